package popularstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/astro-dates/internal/domain/advisor"
)

// ValkeyStore counts date views in a Valkey-compatible database so counters
// survive restarts and aggregate across instances.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs the store.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "dates"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) IncrementView(ctx context.Context, date string) error {
	if date == "" {
		return nil
	}
	cmd := s.client.B().Zincrby().Key(s.viewsKey()).Increment(1).Member(date).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) TopDates(ctx context.Context, limit int) ([]advisor.PopularDate, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.viewsKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]advisor.PopularDate, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element.
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, advisor.PopularDate{Date: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) viewsKey() string {
	return fmt.Sprintf("%s:views", s.prefix)
}

var _ advisor.Store = (*ValkeyStore)(nil)
