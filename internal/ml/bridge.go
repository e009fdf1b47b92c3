package ml

import (
	"log/slog"
	"strings"

	"auroramart/internal/catalog"
)

// IDColumns are the headers that may carry the model identifier. When none
// is present the SKU doubles as its own identifier.
var IDColumns = []string{"model_id", "model id", "product_id", "product id", "id", "sku code"}

// IdentifierBridge maps catalogue SKUs to the identifiers the rule model was
// trained on and back. Lookups are case-insensitive and the first row wins
// for duplicate keys.
type IdentifierBridge struct {
	idToSKU map[string]string
	skuToID map[string]string
}

func NewIdentifierBridge() *IdentifierBridge {
	return &IdentifierBridge{
		idToSKU: make(map[string]string),
		skuToID: make(map[string]string),
	}
}

// BuildIdentifierBridge builds the bridge from a catalogue dataset. A dataset
// without a SKU column yields an empty bridge, and rows without an identifier
// are left out.
func BuildIdentifierBridge(ds *catalog.Dataset) *IdentifierBridge {
	b := NewIdentifierBridge()

	skuCol, ok := ds.Column(catalog.SKUColumns...)
	if !ok {
		return b
	}
	idCol, ok := ds.Column(IDColumns...)
	if !ok {
		idCol = skuCol
	}

	// With a separate identifier column a blank id means the product was not
	// in the training data. Standing in the SKU could shadow a real id.
	for _, row := range ds.Rows {
		sku := ds.Value(row, skuCol)
		id := ds.Value(row, idCol)
		if sku == "" || id == "" {
			continue
		}
		b.Add(id, sku)
	}
	return b
}

// LoadIdentifierBridge reads the catalogue at path. A missing or unreadable
// file is logged and produces an empty bridge.
func LoadIdentifierBridge(path string, logger *slog.Logger) *IdentifierBridge {
	if logger == nil {
		logger = slog.Default()
	}

	ds, err := catalog.ReadFile(path)
	if err != nil {
		logger.Warn("Identifier bridge dataset unavailable",
			slog.String("event_type", "identifier_bridge_unavailable"),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return NewIdentifierBridge()
	}

	b := BuildIdentifierBridge(ds)
	logger.Info("Identifier bridge built",
		slog.String("event_type", "identifier_bridge_built"),
		slog.String("path", path),
		slog.Int("entries", b.Len()),
	)
	return b
}

func bridgeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Add registers an id/sku pair unless either key is already taken
func (b *IdentifierBridge) Add(id, sku string) {
	idKey, skuKey := bridgeKey(id), bridgeKey(sku)
	if idKey == "" || skuKey == "" {
		return
	}
	if _, exists := b.idToSKU[idKey]; !exists {
		b.idToSKU[idKey] = strings.TrimSpace(sku)
	}
	if _, exists := b.skuToID[skuKey]; !exists {
		b.skuToID[skuKey] = idKey
	}
}

// IDForSKU returns the upper-cased model identifier for sku
func (b *IdentifierBridge) IDForSKU(sku string) (string, bool) {
	if b == nil {
		return "", false
	}
	id, ok := b.skuToID[bridgeKey(sku)]
	return id, ok
}

func (b *IdentifierBridge) SKUForID(id string) (string, bool) {
	if b == nil {
		return "", false
	}
	sku, ok := b.idToSKU[bridgeKey(id)]
	return sku, ok
}

// Len is the number of distinct identifiers
func (b *IdentifierBridge) Len() int {
	if b == nil {
		return 0
	}
	return len(b.idToSKU)
}
