package dynamodbcopy

import (
	"context"
	"time"

	"github.com/juju/ratelimit"
)

// ItemStatus is the result of copying a single item
type ItemStatus int

const (
	ItemCopied ItemStatus = iota + 1
	ItemSkipped
)

func (s ItemStatus) String() string {
	switch s {
	case ItemCopied:
		return "copied"
	case ItemSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// ItemOutcome records what happened to one item. Reason is set for skipped items.
type ItemOutcome struct {
	Status ItemStatus
	Item   DynamoDBItem
	Reason error
}

// CopySummary aggregates the item outcomes of a copy run
type CopySummary struct {
	Scanned   int
	Copied    int
	Skipped   int
	Truncated bool
	Skips     []ItemOutcome
}

func (s *CopySummary) add(outcome ItemOutcome) {
	switch outcome.Status {
	case ItemCopied:
		s.Copied++
	case ItemSkipped:
		s.Skipped++
		s.Skips = append(s.Skips, outcome)
	}
}

// WriteLimiter blocks until count writes may be issued
type WriteLimiter interface {
	Wait(count int64)
}

type unlimited struct{}

func (unlimited) Wait(int64) {}

// NewWriteLimiter returns a token bucket refilled with unitsPerSecond tokens every second.
// Zero means no limit.
func NewWriteLimiter(unitsPerSecond int64) WriteLimiter {
	if unitsPerSecond <= 0 {
		return unlimited{}
	}

	return ratelimit.NewBucketWithQuantum(time.Second, unitsPerSecond, unitsPerSecond)
}

type Copier interface {
	Copy(ctx context.Context, key KeySchema, observe func(ItemOutcome)) (CopySummary, error)
}

type copyService struct {
	srcTable DynamoDBService
	trgTable DynamoDBService
	limiter  WriteLimiter
	logger   Logger
	debug    Logger
}

func NewCopier(srcTableService, trgTableService DynamoDBService, limiter WriteLimiter, logger, debug Logger) Copier {
	return copyService{
		srcTable: srcTableService,
		trgTable: trgTableService,
		limiter:  limiter,
		logger:   logger,
		debug:    debug,
	}
}

// Copy puts every item of the first source scan page into the target table.
// Items rejected by the target with a validation error are skipped, any other error aborts the copy.
func (service copyService) Copy(ctx context.Context, key KeySchema, observe func(ItemOutcome)) (CopySummary, error) {
	page, err := service.srcTable.Scan(ctx)
	if err != nil {
		return CopySummary{}, err
	}

	summary := CopySummary{Scanned: len(page.Items), Truncated: page.Truncated}
	if page.Truncated {
		service.logger.Printf(
			"table %s has more items than a single scan page, only %d items will be copied",
			service.srcTable.TableName(),
			len(page.Items),
		)
	}

	for _, item := range page.Items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		outcome, err := service.copyItem(ctx, key, item)
		if err != nil {
			return summary, err
		}

		summary.add(outcome)
		if observe != nil {
			observe(outcome)
		}
	}

	return summary, nil
}

func (service copyService) copyItem(ctx context.Context, key KeySchema, item DynamoDBItem) (ItemOutcome, error) {
	newItem := BuildItem(key, item)
	service.debug.Printf("new item %s", newItem)

	service.limiter.Wait(1)

	if err := service.trgTable.PutItem(ctx, newItem); err != nil {
		if !IsValidationError(err) {
			return ItemOutcome{}, err
		}

		service.logger.Printf("skipping item rejected by table %s: %s %s", service.trgTable.TableName(), newItem, err)

		return ItemOutcome{Status: ItemSkipped, Item: newItem, Reason: err}, nil
	}

	return ItemOutcome{Status: ItemCopied, Item: newItem}, nil
}

// BuildItem sets the key attributes and then copies every other attribute verbatim
func BuildItem(key KeySchema, item DynamoDBItem) DynamoDBItem {
	newItem := make(DynamoDBItem, len(item))

	if value, ok := item[key.HashKey]; ok {
		newItem[key.HashKey] = value
	}

	if key.HasRangeKey() {
		if value, ok := item[key.RangeKey]; ok {
			newItem[key.RangeKey] = value
		}
	}

	for name, value := range item {
		if key.IsKey(name) {
			continue
		}

		newItem[name] = value
	}

	return newItem
}
