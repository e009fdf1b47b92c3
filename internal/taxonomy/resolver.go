package taxonomy

import (
	"log/slog"
	"strings"
)

// Resolver resolves category tokens against the canonical taxonomy. It is
// immutable once built and safe for concurrent use.
type Resolver struct {
	categories []Category
	bySlug     map[string]Category
	keys       map[string]string   // normalised alias key -> slug
	surfaces   map[string][]string // slug -> lowercase spellings for predicates
	logger     *slog.Logger
}

// Predicate matches stored category values that belong to one canonical slug.
// Values are the literal spellings known up front; Matches also accepts any
// value the resolver folds onto Slug.
type Predicate struct {
	Slug   string
	Values []string
	match  func(string) bool
}

// Matches reports whether a stored category value falls under the predicate
func (p Predicate) Matches(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return false
	}
	for _, candidate := range p.Values {
		if candidate == v {
			return true
		}
	}
	return p.match != nil && p.match(raw)
}

// Empty reports whether the predicate can never match anything
func (p Predicate) Empty() bool {
	return len(p.Values) == 0
}

// Widens reports whether stored values outside Values can match
func (p Predicate) Widens() bool {
	return p.match != nil
}

// Expand returns a copy whose Values also hold every stored value that
// Matches, lowercased and trimmed the way repositories compare them.
func (p Predicate) Expand(stored []string) Predicate {
	out := Predicate{Slug: p.Slug, Values: append([]string(nil), p.Values...), match: p.match}
	seen := make(map[string]struct{}, len(out.Values))
	for _, v := range out.Values {
		seen[v] = struct{}{}
	}
	for _, raw := range stored {
		v := strings.ToLower(strings.TrimSpace(raw))
		if _, ok := seen[v]; ok || !p.Matches(raw) {
			continue
		}
		seen[v] = struct{}{}
		out.Values = append(out.Values, v)
	}
	return out
}

// NewResolver builds a resolver over the default taxonomy. Registration order
// is canonical slugs and labels, their mechanical variants, the legacy table,
// then extra. The first registration of a key wins.
func NewResolver(logger *slog.Logger, extra ...Alias) *Resolver {
	return NewResolverWithCategories(DefaultCategories(), logger, extra...)
}

func NewResolverWithCategories(categories []Category, logger *slog.Logger, extra ...Alias) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Resolver{
		categories: append([]Category(nil), categories...),
		bySlug:     make(map[string]Category, len(categories)),
		keys:       make(map[string]string),
		surfaces:   make(map[string][]string, len(categories)),
		logger:     logger,
	}

	for _, c := range r.categories {
		r.bySlug[c.Slug] = c
	}

	for _, c := range r.categories {
		r.register(c.Slug, c.Slug)
		r.register(c.Label, c.Slug)
		for _, variant := range mechanicalVariants(c.Label) {
			r.register(variant, c.Slug)
		}
	}

	for _, a := range LegacyAliases() {
		r.register(a.Alias, a.Category)
	}

	for _, a := range extra {
		slug := strings.ToLower(strings.TrimSpace(a.Category))
		if _, ok := r.bySlug[slug]; !ok {
			// extra aliases may name a target by label as well as by slug
			if resolved, found := r.Resolve(a.Category); found {
				slug = resolved.Slug
			} else {
				r.logger.Warn("ignoring category alias with unknown target",
					slog.String("alias", a.Alias),
					slog.String("category", a.Category),
				)
				continue
			}
		}
		r.register(a.Alias, slug)
	}

	return r
}

func (r *Resolver) register(raw, slug string) {
	key := normalizeKey(raw)
	if key == "" {
		return
	}

	if existing, ok := r.keys[key]; ok {
		if existing != slug {
			return
		}
	} else {
		r.keys[key] = slug
	}

	for _, s := range surfaceForms(raw) {
		r.addSurface(slug, s)
	}
}

func (r *Resolver) addSurface(slug, value string) {
	for _, v := range r.surfaces[slug] {
		if v == value {
			return
		}
	}
	r.surfaces[slug] = append(r.surfaces[slug], value)
}

// Resolve maps a raw category token to its canonical category. Unknown tokens
// report false.
func (r *Resolver) Resolve(raw string) (Category, bool) {
	if slug, ok := r.keys[normalizeKey(raw)]; ok {
		return r.bySlug[slug], true
	}

	if c, ok := r.bySlug[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c, true
	}

	return Category{}, false
}

// ResolveSlug returns the canonical slug for raw, or "" when unresolved
func (r *Resolver) ResolveSlug(raw string) string {
	c, ok := r.Resolve(raw)
	if !ok {
		return ""
	}
	return c.Slug
}

// DisplayLabel returns the canonical label for raw, echoing raw unchanged when
// it cannot be resolved.
func (r *Resolver) DisplayLabel(raw string) string {
	if c, ok := r.Resolve(raw); ok {
		return c.Label
	}
	return raw
}

// MatchPredicate returns the predicate over stored spellings that belong to
// slug. Slug may itself be any resolvable token. The predicate for other also
// covers values that resolve nowhere, matching how ListCategories counts them.
// An unknown token matches values that normalise to the same key.
func (r *Resolver) MatchPredicate(slug string) Predicate {
	c, ok := r.Resolve(slug)
	if !ok {
		v := strings.ToLower(strings.TrimSpace(slug))
		if v == "" {
			return Predicate{Slug: slug}
		}
		key := normalizeKey(slug)
		return Predicate{Slug: slug, Values: []string{v}, match: func(raw string) bool {
			return normalizeKey(raw) == key
		}}
	}

	values := make([]string, len(r.surfaces[c.Slug]))
	copy(values, r.surfaces[c.Slug])
	target := c.Slug
	return Predicate{Slug: target, Values: values, match: func(raw string) bool {
		resolved := r.ResolveSlug(raw)
		return resolved == target || (resolved == "" && target == SlugOther)
	}}
}

// Categories returns the canonical taxonomy in display order
func (r *Resolver) Categories() []Category {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Aliases returns every known lowercase spelling of slug
func (r *Resolver) Aliases(slug string) []string {
	return r.MatchPredicate(slug).Values
}

// normalizeKey folds case, ampersands and separator punctuation so that
// "Home & Kitchen", "home_kitchen" and "home-and-kitchen" share one key.
func normalizeKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', '.', ',', '\'', '+':
			return ' '
		}
		return r
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// mechanicalVariants derives the spellings a label commonly takes in imports
func mechanicalVariants(label string) []string {
	lower := strings.ToLower(label)
	variants := []string{
		strings.ReplaceAll(lower, "&", "and"),
		strings.ReplaceAll(lower, " & ", " "),
		strings.ReplaceAll(lower, " - ", " "),
		strings.ReplaceAll(lower, " - ", "-"),
	}
	return variants
}

// surfaceForms lists the literal stored values a registration should match.
// Stored data is compared after lowercasing and trimming only, so the common
// separator spellings are enumerated explicitly.
func surfaceForms(raw string) []string {
	base := strings.ToLower(strings.TrimSpace(raw))
	if base == "" {
		return nil
	}

	forms := []string{base}
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		for _, f := range forms {
			if f == v {
				return
			}
		}
		forms = append(forms, v)
	}

	add(strings.ReplaceAll(base, "_", " "))
	add(strings.ReplaceAll(base, " & ", " and "))
	add(strings.ReplaceAll(base, " and ", " & "))
	add(strings.ReplaceAll(base, " ", "_"))
	add(strings.ReplaceAll(base, "_", "-"))
	add(strings.ReplaceAll(base, " - ", " "))
	return forms
}
