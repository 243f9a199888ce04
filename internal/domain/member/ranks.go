package member

// Ranks is the tier a member reaches through likes received on their posts.
type Ranks string

const (
	RankRookie       Ranks = "ROOKIE"
	RankBeginner     Ranks = "BEGINNER"
	RankIntermediate Ranks = "INTERMEDIATE"
	RankExpert       Ranks = "EXPERT"
	RankMaster       Ranks = "MASTER"
)

type rankInfo struct {
	name      string
	image     string
	condition string
	threshold int64
}

// ordered from lowest to highest threshold
var rankOrder = []Ranks{RankRookie, RankBeginner, RankIntermediate, RankExpert, RankMaster}

var rankTable = map[Ranks]rankInfo{
	RankRookie:       {name: "Rookie", image: "ranks/rookie.png", condition: "Joined the exchange", threshold: 0},
	RankBeginner:     {name: "Beginner", image: "ranks/beginner.png", condition: "10 or more likes received", threshold: 10},
	RankIntermediate: {name: "Intermediate", image: "ranks/intermediate.png", condition: "50 or more likes received", threshold: 50},
	RankExpert:       {name: "Expert", image: "ranks/expert.png", condition: "200 or more likes received", threshold: 200},
	RankMaster:       {name: "Master", image: "ranks/master.png", condition: "1000 or more likes received", threshold: 1000},
}

// AllRanks returns every rank, lowest first.
func AllRanks() []Ranks {
	out := make([]Ranks, len(rankOrder))
	copy(out, rankOrder)
	return out
}

func (r Ranks) Valid() bool {
	_, ok := rankTable[r]
	return ok
}

func (r Ranks) Name() string      { return rankTable[r.orDefault()].name }
func (r Ranks) Image() string     { return rankTable[r.orDefault()].image }
func (r Ranks) Condition() string { return rankTable[r.orDefault()].condition }
func (r Ranks) Threshold() int64  { return rankTable[r.orDefault()].threshold }

func (r Ranks) orDefault() Ranks {
	if r.Valid() {
		return r
	}
	return RankRookie
}

// RankFor returns the highest rank whose threshold is met by likes.
func RankFor(likes int64) Ranks {
	rank := RankRookie
	for _, r := range rankOrder {
		if likes >= rankTable[r].threshold {
			rank = r
		}
	}
	return rank
}
