// Command devtool prepares a local database: it seeds the category catalog,
// creates members and prints bearer tokens for them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yungbote/talentswap-backend/internal/app"
	"github.com/yungbote/talentswap-backend/internal/data/db"
	types "github.com/yungbote/talentswap-backend/internal/domain"
	"github.com/yungbote/talentswap-backend/internal/domain/member"
	"github.com/yungbote/talentswap-backend/internal/platform/dbctx"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

func main() {
	var nicknames stringList
	var tokenFor stringList
	var seed bool
	flag.Var(&nicknames, "member", "nickname of a member to create (repeatable)")
	flag.Var(&tokenFor, "token", "member id to issue an access token for (repeatable)")
	flag.BoolVar(&seed, "seed", false, "seed the category catalog")
	flag.Parse()

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if seed {
		n, err := db.SeedCategories(ctx, application.DB)
		if err != nil {
			fmt.Printf("seed categories: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("seeded %d categories\n", n)
	}

	if len(nicknames) > 0 {
		rows := make([]*types.Member, 0, len(nicknames))
		for _, raw := range nicknames {
			nickname, ok := member.NormalizeNickname(raw)
			if !ok {
				fmt.Printf("skip invalid nickname %q\n", raw)
				continue
			}
			rows = append(rows, &types.Member{Nickname: nickname, Ranks: member.RankRookie})
		}
		created, err := application.Repos.Member.Create(dbctx.Context{Ctx: ctx}, rows)
		if err != nil {
			fmt.Printf("create members: %v\n", err)
			os.Exit(1)
		}
		for _, m := range created {
			fmt.Printf("member id=%d nickname=%s\n", m.ID, m.Nickname)
			tokenFor = append(tokenFor, strconv.FormatUint(m.ID, 10))
		}
	}

	for _, raw := range tokenFor {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			fmt.Printf("skip invalid member id %q\n", raw)
			continue
		}
		token, err := application.Services.Auth.IssueToken(id)
		if err != nil {
			fmt.Printf("issue token for %d: %v\n", id, err)
			continue
		}
		fmt.Printf("token member=%d ttl=%s\n%s\n", id, application.Services.Auth.GetAccessTTL(), token)
	}
}
