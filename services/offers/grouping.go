package offers

import (
	"fmt"
	"sort"
	"strings"

	"tripnest/models"
)

// UnknownConfigurationKey is the synthetic key for offers with no room
// breakdown. Keeping it out of the derived-key namespace avoids accidental
// collisions with real configurations.
const UnknownConfigurationKey = "unknown"

const keySeparator = "|"

// ConfigurationKey derives the canonical key for an offer's room combination:
// breakdown entries sorted lexicographically by room-type name, rendered as
// "{count}x{name}" and joined. Two offers with the same room-type multiset
// produce an identical key regardless of their breakdown ordering.
func ConfigurationKey(breakdown []models.RoomBreakdownEntry) string {
	if len(breakdown) == 0 {
		return UnknownConfigurationKey
	}
	parts := make([]string, 0, len(breakdown))
	for _, entry := range canonicalBreakdown(breakdown) {
		parts = append(parts, fmt.Sprintf("%dx%s", entry.Count, entry.RoomTypeName))
	}
	return strings.Join(parts, keySeparator)
}

// canonicalBreakdown returns a sorted copy of the breakdown so that two
// offers with the same room-type multiset normalize to the same entry order.
func canonicalBreakdown(breakdown []models.RoomBreakdownEntry) []models.RoomBreakdownEntry {
	sorted := make([]models.RoomBreakdownEntry, len(breakdown))
	copy(sorted, breakdown)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RoomTypeName != sorted[j].RoomTypeName {
			return sorted[i].RoomTypeName < sorted[j].RoomTypeName
		}
		return sorted[i].Count < sorted[j].Count
	})
	return sorted
}

// Group folds offers that represent the identical physical room combination
// into configuration groups. Within a group offers are sorted ascending by
// retail total (stable on ties); groups are ordered ascending by their
// cheapest offer. The function is pure: any permutation of the input yields
// the same groups, and each group carries the canonically ordered breakdown
// rather than whichever member's ordering happened to arrive first.
func Group(rates []models.RoomOffer) []models.RoomConfigurationGroup {
	byKey := make(map[string]*models.RoomConfigurationGroup)
	order := make([]string, 0)

	for _, offer := range rates {
		key := ConfigurationKey(offer.RoomBreakdown)
		group, ok := byKey[key]
		if !ok {
			group = &models.RoomConfigurationGroup{
				ConfigurationKey: key,
				RoomBreakdown:    canonicalBreakdown(offer.RoomBreakdown),
			}
			byKey[key] = group
			order = append(order, key)
		}
		group.Offers = append(group.Offers, offer)
	}

	groups := make([]models.RoomConfigurationGroup, 0, len(order))
	for _, key := range order {
		group := byKey[key]
		sort.SliceStable(group.Offers, func(i, j int) bool {
			return group.Offers[i].RetailRate.Total < group.Offers[j].RetailRate.Total
		})
		group.StartingPrice = group.Offers[0].RetailRate
		groups = append(groups, *group)
	}

	// Cheapest group first; ties keep first-seen order.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].StartingPrice.Total < groups[j].StartingPrice.Total
	})
	return groups
}
