package converter

import "github.com/ginjaninja78/apology/internal/types"

// Group partitions records by (country, region).
//
// Every record lands in exactly one group. Within a group records keep their
// input order, and groups are listed in order of first appearance so that
// files are written in a deterministic order.
func Group(records []types.Record) *types.Groups {
	groups := &types.Groups{
		Keys:    []types.GroupKey{},
		Records: make(map[types.GroupKey][]types.Record),
	}

	for _, record := range records {
		key := record.Key()
		if _, exists := groups.Records[key]; !exists {
			groups.Keys = append(groups.Keys, key)
		}
		groups.Records[key] = append(groups.Records[key], record)
	}

	return groups
}
