package ml

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// RulesLoader produces the rule artifact on first use
type RulesLoader func() (RuleArtifact, error)

// AssociationRecommender turns a basket of SKUs into ranked SKU
// recommendations using mined association rules.
type AssociationRecommender struct {
	bridge        *IdentifierBridge
	load          RulesLoader
	candidateMult int
	logger        *slog.Logger

	once     sync.Once
	artifact RuleArtifact
}

func NewAssociationRecommender(bridge *IdentifierBridge, load RulesLoader, candidateMult int, logger *slog.Logger) *AssociationRecommender {
	if logger == nil {
		logger = slog.Default()
	}
	if candidateMult < 1 {
		candidateMult = 1
	}
	return &AssociationRecommender{
		bridge:        bridge,
		load:          load,
		candidateMult: candidateMult,
		logger:        logger,
	}
}

func (r *AssociationRecommender) rules() RuleArtifact {
	r.once.Do(func() {
		r.artifact = RuleArtifact{kind: KindUnknown}
		if r.load == nil {
			return
		}

		artifact, err := func() (a RuleArtifact, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("rules load panicked: %v", rec)
				}
			}()
			return r.load()
		}()
		if err != nil {
			r.logger.Warn("Association rules unavailable",
				slog.String("event_type", "rules_load_failed"),
				slog.String("error", err.Error()),
			)
			return
		}
		r.artifact = artifact
	})
	return r.artifact
}

// Kind reports the shape of the loaded rule artifact
func (r *AssociationRecommender) Kind() ArtifactKind {
	return r.rules().Kind()
}

// Recommend returns up to topN SKUs for the basket. Unmapped basket SKUs are
// dropped, and an empty mapped basket or an unusable artifact yields no
// recommendations. Results never contain basket items or duplicates.
func (r *AssociationRecommender) Recommend(basketSKUs []string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	ids := make([]string, 0, len(basketSKUs))
	seenIDs := make(map[string]struct{}, len(basketSKUs))
	inBasket := make(map[string]struct{}, len(basketSKUs))
	for _, sku := range basketSKUs {
		inBasket[bridgeKey(sku)] = struct{}{}
		id, ok := r.bridge.IDForSKU(sku)
		if !ok {
			continue
		}
		if _, dup := seenIDs[id]; dup {
			continue
		}
		seenIDs[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []string{}
	}

	artifact := r.rules()
	if artifact.Kind() == KindUnknown {
		return []string{}
	}

	candidates, err := artifact.Candidates(ids, topN*r.candidateMult)
	if err != nil {
		r.logger.Warn("Association rule lookup failed",
			slog.String("event_type", "rules_lookup_failed"),
			slog.String("kind", string(artifact.Kind())),
			slog.String("error", err.Error()),
		)
		return []string{}
	}

	out := make([]string, 0, topN)
	seenSKUs := make(map[string]struct{}, len(candidates))
	for _, id := range candidates {
		if _, self := seenIDs[itemKey(id)]; self {
			continue
		}
		sku, ok := r.bridge.SKUForID(id)
		if !ok {
			continue
		}
		key := strings.ToUpper(sku)
		if _, self := inBasket[key]; self {
			continue
		}
		if _, dup := seenSKUs[key]; dup {
			continue
		}
		seenSKUs[key] = struct{}{}
		out = append(out, sku)
		if len(out) == topN {
			break
		}
	}
	return out
}
