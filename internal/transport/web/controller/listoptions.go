package controller

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/hireloop/swipematch/internal/domain"
)

const (
	defaultDeckLimit = 20
	maxDeckLimit     = 100
)

// deckLimitFromQuery parses the optional limit parameter for deck endpoints.
func deckLimitFromQuery(q url.Values) (int, error) {
	if !q.Has("limit") {
		return defaultDeckLimit, nil
	}

	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse limit from query: %w", err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("invalid limit value [%d]", limit)
	}
	if limit > maxDeckLimit {
		return 0, fmt.Errorf("limit [%d] exceeds maximum [%d]", limit, maxDeckLimit)
	}

	return int(limit), nil
}

func jobListOptionsFromQuery(q url.Values) (domain.JobListOptions, error) {
	var options domain.JobListOptions
	if q.Has("page") {
		page, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return domain.JobListOptions{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return domain.JobListOptions{}, fmt.Errorf("invalid page value [%d]", page)
		}
		options.Page = int(page)
	} else {
		options.Page = 1
	}

	if q.Has("page_size") {
		pageSize, err := strconv.ParseInt(q.Get("page_size"), 10, 32)
		if err != nil {
			return domain.JobListOptions{}, fmt.Errorf("unable to parse page size from query: %w", err)
		}
		if pageSizeLimit := int64(200); pageSize > pageSizeLimit {
			return domain.JobListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]",
				pageSize, pageSizeLimit)
		}
		options.PageSize = int(pageSize)
	} else {
		options.PageSize = 100
	}

	if q.Has("sort") {
		orderings := strings.Split(q.Get("sort"), ",")

		for _, ordering := range orderings {
			field := ordering
			desc := false
			if strings.HasSuffix(ordering, "_desc") {
				field = ordering[:len(ordering)-5]
				desc = true
			}

			if !slices.Contains(domain.ValidJobOrderingFields, domain.JobOrderingField(field)) {
				return domain.JobListOptions{}, fmt.Errorf("unrecognised job ordering field: %s", field)
			}

			options.Ordering = append(options.Ordering, domain.JobOrdering{
				Field: domain.JobOrderingField(field),
				Desc:  desc,
			})
		}
	}

	return options, nil
}
