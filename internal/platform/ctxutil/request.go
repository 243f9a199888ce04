package ctxutil

import "context"

type requestDataKey struct{}

// RequestData carries the authenticated caller for the current request.
type RequestData struct {
	TokenString string
	MemberID    uint64
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// MemberID returns the authenticated member id, or false when the request is anonymous.
func MemberID(ctx context.Context) (uint64, bool) {
	rd := GetRequestData(ctx)
	if rd == nil || rd.MemberID == 0 {
		return 0, false
	}
	return rd.MemberID, true
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
