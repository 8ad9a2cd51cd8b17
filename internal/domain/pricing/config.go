package pricing

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

// Tier is one bracket of a tiered rate table. A shipment matches the tier
// when the keyed value falls in [Min, Max). A nil Max means the tier is
// unbounded above.
type Tier struct {
	Min  float64  `json:"min"`
	Max  *float64 `json:"max,omitempty"`
	Rate float64  `json:"rate"`
}

// Contains reports whether v falls inside the tier's range
func (t Tier) Contains(v float64) bool {
	if v < t.Min {
		return false
	}
	return t.Max == nil || v < *t.Max
}

// Config is the parsed, strongly-typed pricing configuration of a logistics
// provider. Exactly one of FlatRate or Tiers is meaningful depending on Model.
// A nil FlatRate means no valid flat rate was ever parsed, which is distinct
// from a configured rate of zero; rate resolution must not treat the two the
// same. Raw tier strings are parsed once at the storage boundary and never
// passed further in.
type Config struct {
	Model    enum.PricingModel `json:"model"`
	FlatRate *float64          `json:"flat_rate,omitempty"`
	Tiers    []Tier            `json:"tiers,omitempty"`
}

// Legacy labeled prefixes tolerated on parse alongside the unlabeled
// canonical form.
const (
	legacyFlatPrefix     = "flat:"
	legacyWeightPrefix   = "w:"
	legacyDistancePrefix = "d:"
)

// entrySeparator joins serialized entries into the single stored column value
const entrySeparator = ","

// ParseConfig parses the serialized pricing configuration of a provider.
// Flat-rate configs serialize to a single numeric string; tiered configs to a
// sequence of "min-max@rate" entries ("+" for an unbounded max).
//
// Parsing is deliberately lenient: malformed tier entries are skipped rather
// than rejected, to tolerate partially-corrupt stored data. Skipped entries
// are logged so the lossiness is observable.
func ParseConfig(model enum.PricingModel, entries []string) (*Config, error) {
	if !model.IsValid() {
		return nil, NewConfigurationError(fmt.Sprintf("unknown pricing model %d", int(model)))
	}

	cfg := &Config{Model: model}
	dropped := 0

	for _, entry := range entries {
		entry = stripLegacyPrefix(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}

		if model == enum.PricingModelFlatRate {
			rate, err := strconv.ParseFloat(entry, 64)
			if err != nil || rate < 0 {
				dropped++
				continue
			}
			cfg.FlatRate = &rate
			continue
		}

		tier, ok := parseTier(entry)
		if !ok {
			dropped++
			continue
		}
		cfg.Tiers = append(cfg.Tiers, tier)
	}

	if dropped > 0 {
		log.Printf("pricing: skipped %d malformed config entries (model=%s)", dropped, model)
	}

	return cfg, nil
}

// ParseConfigString parses the single stored column value, splitting it into
// its serialized entries first.
func ParseConfigString(model enum.PricingModel, raw string) (*Config, error) {
	if strings.TrimSpace(raw) == "" {
		return ParseConfig(model, nil)
	}
	return ParseConfig(model, strings.Split(raw, entrySeparator))
}

// parseTier parses a single "min-max@rate" entry. Returns false for anything
// malformed so the caller can skip it.
func parseTier(entry string) (Tier, bool) {
	rangePart, ratePart, found := strings.Cut(entry, "@")
	if !found {
		return Tier{}, false
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(ratePart), 64)
	if err != nil || rate < 0 {
		return Tier{}, false
	}

	minPart, maxPart, found := strings.Cut(rangePart, "-")
	if !found {
		return Tier{}, false
	}

	min, err := strconv.ParseFloat(strings.TrimSpace(minPart), 64)
	if err != nil || min < 0 {
		return Tier{}, false
	}

	tier := Tier{Min: min, Rate: rate}

	maxPart = strings.TrimSpace(maxPart)
	if maxPart != "+" {
		max, err := strconv.ParseFloat(maxPart, 64)
		if err != nil || max <= min {
			return Tier{}, false
		}
		tier.Max = &max
	}

	return tier, true
}

func stripLegacyPrefix(entry string) string {
	for _, prefix := range []string{legacyFlatPrefix, legacyWeightPrefix, legacyDistancePrefix} {
		if strings.HasPrefix(entry, prefix) {
			return strings.TrimPrefix(entry, prefix)
		}
	}
	return entry
}

// SerializeConfig renders the config back into its stored entry form.
// Serialize and Parse round-trip semantically for any valid config.
func SerializeConfig(cfg *Config) []string {
	if cfg == nil {
		return nil
	}

	if cfg.Model == enum.PricingModelFlatRate {
		if cfg.FlatRate == nil {
			return nil
		}
		return []string{formatRate(*cfg.FlatRate)}
	}

	entries := make([]string, 0, len(cfg.Tiers))
	for _, tier := range cfg.Tiers {
		max := "+"
		if tier.Max != nil {
			max = formatRate(*tier.Max)
		}
		entries = append(entries, fmt.Sprintf("%s-%s@%s", formatRate(tier.Min), max, formatRate(tier.Rate)))
	}
	return entries
}

// SerializeConfigString renders the config into the single stored column value
func SerializeConfigString(cfg *Config) string {
	return strings.Join(SerializeConfig(cfg), entrySeparator)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Validate checks the config is internally consistent: non-negative rates,
// tiers ordered ascending by Min and non-overlapping, and no tier after an
// unbounded one. Called when a provider saves a profile, not on every quote.
func (c *Config) Validate() error {
	if c == nil {
		return NewConfigurationError("missing configuration")
	}

	if c.Model == enum.PricingModelFlatRate {
		if c.FlatRate == nil {
			return NewConfigurationError("flat rate is not configured")
		}
		if *c.FlatRate < 0 {
			return NewConfigurationError("flat rate must be non-negative")
		}
		return nil
	}

	if len(c.Tiers) == 0 {
		return NewConfigurationError("tiered model requires at least one tier")
	}

	for i, tier := range c.Tiers {
		if tier.Rate < 0 {
			return NewConfigurationError(fmt.Sprintf("tier %d has negative rate", i))
		}
		if tier.Max != nil && *tier.Max <= tier.Min {
			return NewConfigurationError(fmt.Sprintf("tier %d has max <= min", i))
		}
		if i == 0 {
			continue
		}
		prev := c.Tiers[i-1]
		if prev.Max == nil {
			return NewConfigurationError("no tiers allowed after an unbounded tier")
		}
		if tier.Min < *prev.Max {
			return NewConfigurationError(fmt.Sprintf("tier %d overlaps previous tier", i))
		}
	}

	return nil
}
