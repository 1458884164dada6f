package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/print_api/internal/models"
)

// pricePlaces is the scale stored in precomputed_prices numeric columns.
const pricePlaces = 4

// Snapshot is an immutable size x paper price table. Readers hold a pointer to
// one snapshot for the whole of a calculation and never see a partial rebuild.
type Snapshot struct {
	version int64
	builtAt time.Time
	entries []models.PrecomputedPriceEntry
	index   map[string]int
}

func entryKey(sizeCode, paperCode string, weight int) string {
	return sizeCode + "|" + paperCode + "|" + strconv.Itoa(weight)
}

// NewSnapshot wraps already-derived entries, e.g. rows loaded back from the
// database. Entries are copied and sorted.
func NewSnapshot(version int64, builtAt time.Time, entries []models.PrecomputedPriceEntry) *Snapshot {
	cp := make([]models.PrecomputedPriceEntry, len(entries))
	copy(cp, entries)
	sortEntries(cp)

	s := &Snapshot{
		version: version,
		builtAt: builtAt,
		entries: cp,
		index:   make(map[string]int, len(cp)),
	}
	for i, e := range cp {
		s.index[entryKey(e.SizeCode, e.PaperCode, e.PaperWeight)] = i
	}
	return s
}

// BuildSnapshot derives every entry for active sizes and active paper costs
// that share a base sheet size. sellPerSheet = cost x margin and
// sellPerCopy = sellPerSheet / upCount. Sizes with a non-positive up count
// are skipped and reported in the returned warnings.
func BuildSnapshot(version int64, builtAt time.Time, sizes []models.Size, papers []models.PaperCost) (*Snapshot, []string) {
	var warnings []string
	entries := make([]models.PrecomputedPriceEntry, 0, len(sizes)*len(papers))

	for _, sz := range sizes {
		if !sz.IsActive {
			continue
		}
		if sz.UpCount <= 0 {
			warnings = append(warnings, fmt.Sprintf("size %s has upCount %d", sz.Code, sz.UpCount))
			continue
		}
		upCount := decimal.NewFromInt(int64(sz.UpCount))
		for _, pc := range papers {
			if !pc.IsActive || pc.BaseSheetSize != sz.BaseSheetSize {
				continue
			}
			perSheet := pc.CostPerSheet.Mul(pc.MarginRate).Round(pricePlaces)
			entries = append(entries, models.PrecomputedPriceEntry{
				SizeID:            sz.ID,
				SizeCode:          sz.Code,
				PaperCostID:       pc.ID,
				PaperCode:         pc.PaperCode,
				PaperWeight:       pc.Weight,
				BaseSheetSize:     sz.BaseSheetSize,
				UpCount:           sz.UpCount,
				CostPerSheet:      pc.CostPerSheet,
				MarginRate:        pc.MarginRate,
				SellPricePerSheet: perSheet,
				SellPricePerCopy:  perSheet.Div(upCount).Round(pricePlaces),
			})
		}
	}

	return NewSnapshot(version, builtAt, entries), warnings
}

func sortEntries(entries []models.PrecomputedPriceEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if c := strings.Compare(a.SizeCode, b.SizeCode); c != 0 {
			return c < 0
		}
		if c := strings.Compare(a.PaperCode, b.PaperCode); c != 0 {
			return c < 0
		}
		return a.PaperWeight < b.PaperWeight
	})
}

// WithVersion returns the same entries stamped with a persisted version.
func (s *Snapshot) WithVersion(version int64, builtAt time.Time) *Snapshot {
	return &Snapshot{version: version, builtAt: builtAt, entries: s.entries, index: s.index}
}

// Lookup implements pricing.PriceTable.
func (s *Snapshot) Lookup(sizeCode, paperCode string, weight int) (models.PrecomputedPriceEntry, bool) {
	i, ok := s.index[entryKey(sizeCode, paperCode, weight)]
	if !ok {
		return models.PrecomputedPriceEntry{}, false
	}
	return s.entries[i], true
}

// Version implements pricing.PriceTable.
func (s *Snapshot) Version() int64 { return s.version }

func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

func (s *Snapshot) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in key order.
func (s *Snapshot) Entries() []models.PrecomputedPriceEntry {
	out := make([]models.PrecomputedPriceEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Meta summarizes the snapshot.
func (s *Snapshot) Meta() models.PriceCacheMeta {
	return models.PriceCacheMeta{Version: s.version, BuiltAt: s.builtAt, EntryCount: len(s.entries)}
}
