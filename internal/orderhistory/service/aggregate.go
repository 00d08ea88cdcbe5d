package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"order-history-service/internal/orderhistory/domain"
)

// Title capture patterns, selected by the word count carried in a numeric
// variant_title. Two words split into product + variant; three words split
// into product (first two words) + type (second word) + variant (third word).
var (
	twoWordTitle   = regexp.MustCompile(`^(\S+)\s+(\S+)$`)
	threeWordTitle = regexp.MustCompile(`^((\S+)\s+(\S+))\s+(\S+)$`)
)

// decomposition is the product/variant split of a single line-item title.
type decomposition struct {
	product string
	typ     string
	variant string
}

// decomposeTitle splits a raw (title, variant_title) pair. A variant_title
// that is empty or not an integer is taken verbatim; an integer selects a
// word-count pattern over the title instead.
func decomposeTitle(title string, variantTitle domain.Scalar) (decomposition, error) {
	vt := variantTitle.String()
	words, err := strconv.Atoi(strings.TrimSpace(vt))
	if err != nil {
		return decomposition{product: title, variant: vt}, nil
	}

	switch words {
	case 2:
		m := twoWordTitle.FindStringSubmatch(title)
		if m == nil {
			return decomposition{}, fmt.Errorf("title %q does not match the two word pattern", title)
		}
		return decomposition{product: m[1], variant: m[2]}, nil
	case 3:
		m := threeWordTitle.FindStringSubmatch(title)
		if m == nil {
			return decomposition{}, fmt.Errorf("title %q does not match the three word pattern", title)
		}
		return decomposition{product: m[1], typ: m[3], variant: m[4]}, nil
	default:
		// Only the two known word counts have a defined split. Anything else
		// is unsupported input and must abort the transform.
		return decomposition{}, fmt.Errorf("unsupported variant title numeral %d", words)
	}
}

// variantLabel renders one member as "{quantity}x {variant}". When the title
// decomposition produced no variant text the product name is repeated.
func variantLabel(quantity int, d decomposition) string {
	label := d.variant
	if d.typ != "" {
		label = d.typ + " " + d.variant
	}
	if label == "" {
		label = d.product
	}
	return fmt.Sprintf("%dx %s", quantity, label)
}

// skuPrefix extracts the grouping key: everything before the first dash, or
// the whole SKU when there is none.
func skuPrefix(sku string) string {
	if i := strings.Index(sku, "-"); i >= 0 {
		return sku[:i]
	}
	return sku
}

// AggregateLineItems folds the raw line-item rows of one order into a list
// of purchase items, one per SKU prefix. Groups keep the order their first
// member occurred in; within a group the row order is preserved. The first
// member of a group supplies the id, thumbnail and product name.
func AggregateLineItems(items []domain.RawLineItem) ([]domain.PurchaseItem, error) {
	prefixes := make([]string, 0, len(items))
	groups := make(map[string][]domain.RawLineItem, len(items))

	for _, item := range items {
		prefix := skuPrefix(item.SKU)
		if _, seen := groups[prefix]; !seen {
			prefixes = append(prefixes, prefix)
		}
		groups[prefix] = append(groups[prefix], item)
	}

	result := make([]domain.PurchaseItem, 0, len(prefixes))
	for _, prefix := range prefixes {
		purchase, err := aggregateGroup(groups[prefix])
		if err != nil {
			return nil, fmt.Errorf("sku group %s: %w", prefix, err)
		}
		result = append(result, purchase)
	}
	return result, nil
}

func aggregateGroup(members []domain.RawLineItem) (domain.PurchaseItem, error) {
	labels := make([]string, 0, len(members))
	var name string
	var total float64

	for i, member := range members {
		d, err := decomposeTitle(member.Title, member.VariantTitle)
		if err != nil {
			return domain.PurchaseItem{}, err
		}
		if i == 0 {
			name = d.product
		}

		quantity, err := strconv.Atoi(member.Quantity.String())
		if err != nil {
			return domain.PurchaseItem{}, fmt.Errorf("invalid quantity %q: %w", member.Quantity, err)
		}
		price, err := strconv.ParseFloat(member.Price.String(), 64)
		if err != nil {
			return domain.PurchaseItem{}, fmt.Errorf("invalid price %q: %w", member.Price, err)
		}

		labels = append(labels, variantLabel(quantity, d))
		total += price * float64(quantity)
	}

	first := members[0]
	return domain.PurchaseItem{
		ID:           first.ID.String(),
		ThumbnailURL: first.Image,
		Name:         name,
		Descriptor:   strings.Join(labels, ", "),
		Price:        fmt.Sprintf("%.2f", total),
	}, nil
}
