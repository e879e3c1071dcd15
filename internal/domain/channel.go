package domain

import "strings"

// Channel is the traffic-source bucket an order is attributed to, derived
// from the UTM source of the customer's first tracked visit.
type Channel string

const (
	PaidSocial Channel = "paidSocial"
	PaidSearch Channel = "paidSearch"
	Organic    Channel = "organic"
)

// ChannelClassifier maps raw UTM sources to channels. The paid-social source
// set comes from configuration; matching is case-insensitive.
type ChannelClassifier struct {
	paidSocialSources map[string]struct{}
}

func NewChannelClassifier(paidSocialSources []string) *ChannelClassifier {
	sources := make(map[string]struct{}, len(paidSocialSources))
	for _, source := range paidSocialSources {
		sources[strings.ToLower(source)] = struct{}{}
	}

	return &ChannelClassifier{paidSocialSources: sources}
}

// Classify resolves a channel for a raw UTM source. A nil or unrecognized
// source is organic traffic; it never fails.
func (c *ChannelClassifier) Classify(utmSource *string) Channel {
	if utmSource == nil || *utmSource == "" {
		return Organic
	}

	source := strings.ToLower(*utmSource)

	if _, ok := c.paidSocialSources[source]; ok {
		return PaidSocial
	}

	if source == "google" {
		return PaidSearch
	}

	return Organic
}

// ChannelTotals is a running per-channel accumulator for one metric. Each
// request builds its own instance; values land in the matching channel and
// in Total.
type ChannelTotals struct {
	PaidSocial float64
	PaidSearch float64
	Organic    float64
	Total      float64
}

// Add accumulates a value into the given channel and the total.
func (t *ChannelTotals) Add(channel Channel, value float64) {
	t.Total += value

	switch channel {
	case PaidSocial:
		t.PaidSocial += value
	case PaidSearch:
		t.PaidSearch += value
	default:
		t.Organic += value
	}
}
