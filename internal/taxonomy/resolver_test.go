package taxonomy

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.resolver = NewResolver(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ResolverTestSuite) TestResolve_HomeKitchenSpellings() {
	inputs := []string{"home_kitchen", "Home & Kitchen", "Home and Kitchen", "home appliances", "  HOME-AND-KITCHEN ", "home kitchen"}

	for _, raw := range inputs {
		s.Run(raw, func() {
			c, ok := s.resolver.Resolve(raw)
			s.True(ok)
			s.Equal(SlugHomeKitchen, c.Slug)
			s.Equal("Home & Kitchen", c.Label)
		})
	}
}

func (s *ResolverTestSuite) TestMatchPredicate_AgreesWithResolve() {
	testCases := []struct {
		stored string
		slug   string
	}{
		{"Home-and-Kitchen", SlugHomeKitchen},
		{"home and  kitchen", SlugHomeKitchen},
		{"home-&-kitchen", SlugHomeKitchen},
		{"HOME/KITCHEN", SlugHomeKitchen},
		{"Toys-and-Games", SlugToysGames},
		{"fashion/men", SlugFashionMen},
		{"Garden Furniture", SlugOther},
	}

	for _, tc := range testCases {
		s.Run(tc.stored, func() {
			if tc.slug != SlugOther {
				s.Equal(tc.slug, s.resolver.ResolveSlug(tc.stored))
			}
			s.True(s.resolver.MatchPredicate(tc.slug).Matches(tc.stored))
		})
	}

	s.False(s.resolver.MatchPredicate(SlugHomeKitchen).Matches("Toys-and-Games"))
	s.False(s.resolver.MatchPredicate(SlugOther).Matches("Home-and-Kitchen"))
	s.False(s.resolver.MatchPredicate(SlugHomeKitchen).Matches("  "))
}

func (s *ResolverTestSuite) TestPredicateExpand_AddsStoredSpellings() {
	predicate := s.resolver.MatchPredicate(SlugHomeKitchen)
	s.True(predicate.Widens())
	s.NotContains(predicate.Values, "home/kitchen")

	expanded := predicate.Expand([]string{" HOME/KITCHEN ", "Toys-and-Games", "home_kitchen", "Home-and-Kitchen"})

	s.Contains(expanded.Values, "home/kitchen")
	s.Contains(expanded.Values, "home-and-kitchen")
	s.NotContains(expanded.Values, "toys-and-games")
	s.Len(expanded.Values, len(predicate.Values)+2)

	unknown := s.resolver.MatchPredicate("Garden Furniture")
	s.Equal([]string{"garden furniture"}, unknown.Values)
	s.Contains(unknown.Expand([]string{"garden-furniture"}).Values, "garden-furniture")

	literal := Predicate{Slug: SlugBooks, Values: []string{"books"}}
	s.False(literal.Widens())
	s.False(literal.Matches("Books & Novels"))
}

func (s *ResolverTestSuite) TestResolve_LegacySlugs() {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"hair", SlugBeautyPersonalCare},
		{"others", SlugOther},
		{"Beauty Personal Care", SlugBeautyPersonalCare},
		{"Fashion - Men", SlugFashionMen},
		{"mens fashion", SlugFashionMen},
		{"Electronics & Gadgets", SlugElectronics},
		{"grocery", SlugGroceriesGourmet},
		{"Sports and Outdoors", SlugSportsOutdoors},
		{"toy", SlugToysGames},
		{"PETS", SlugPetSupplies},
	}

	for _, tc := range testCases {
		s.Run(tc.raw, func() {
			s.Equal(tc.expected, s.resolver.ResolveSlug(tc.raw))
		})
	}
}

func (s *ResolverTestSuite) TestResolve_Unresolved() {
	for _, raw := range []string{"", "   ", "garden furniture", "???"} {
		_, ok := s.resolver.Resolve(raw)
		s.False(ok, "%q should not resolve", raw)
		s.Equal("", s.resolver.ResolveSlug(raw))
	}
}

func (s *ResolverTestSuite) TestResolve_IdempotentThroughLabel() {
	raws := []string{"hair", "home appliances", "Fashion - Women", "smart devices", "books", "garden furniture"}

	for _, raw := range raws {
		first, ok := s.resolver.Resolve(raw)
		if !ok {
			s.Equal(raw, s.resolver.DisplayLabel(raw))
			continue
		}
		second, ok := s.resolver.Resolve(s.resolver.DisplayLabel(first.Slug))
		s.True(ok)
		s.Equal(first, second)
	}
}

func (s *ResolverTestSuite) TestDisplayLabel() {
	s.Equal("Toys & Games", s.resolver.DisplayLabel("toys_games"))
	s.Equal("Other", s.resolver.DisplayLabel("others"))
	s.Equal("Garden Furniture", s.resolver.DisplayLabel("Garden Furniture"))
}

func (s *ResolverTestSuite) TestMatchPredicate_CoversStoredSpellings() {
	p := s.resolver.MatchPredicate(SlugHomeKitchen)

	s.Equal(SlugHomeKitchen, p.Slug)
	for _, stored := range []string{"home_kitchen", "Home & Kitchen", "home and kitchen", "Home Appliances", " HOME & KITCHEN "} {
		s.True(p.Matches(stored), "%q should match", stored)
	}
	s.False(p.Matches("electronics"))
	s.False(p.Matches(""))
}

func (s *ResolverTestSuite) TestMatchPredicate_AcceptsAnyResolvableToken() {
	p := s.resolver.MatchPredicate("hair")
	s.Equal(SlugBeautyPersonalCare, p.Slug)
	s.True(p.Matches("beauty & personal care"))
	s.True(p.Matches("hair"))
}

func (s *ResolverTestSuite) TestMatchPredicate_UnknownSlug() {
	p := s.resolver.MatchPredicate("Garden")
	s.Equal([]string{"garden"}, p.Values)
	s.True(p.Matches("GARDEN"))

	s.True(s.resolver.MatchPredicate("  ").Empty())
}

func (s *ResolverTestSuite) TestCategories_ReturnsCopy() {
	cats := s.resolver.Categories()
	s.Len(cats, 13)
	cats[0].Label = "changed"
	s.Equal("Automotive", s.resolver.Categories()[0].Label)
}

func (s *ResolverTestSuite) TestFirstRegistrationWins() {
	r := NewResolver(nil,
		Alias{Alias: "books", Category: SlugElectronics},
		Alias{Alias: "gizmos", Category: SlugElectronics},
		Alias{Alias: "gizmos", Category: SlugToysGames},
		Alias{Alias: "stuff", Category: "Home & Kitchen"},
		Alias{Alias: "junk", Category: "nowhere"},
	)

	s.Equal(SlugBooks, r.ResolveSlug("books"))
	s.Equal(SlugElectronics, r.ResolveSlug("Gizmos"))
	s.Equal(SlugHomeKitchen, r.ResolveSlug("stuff"))
	s.Equal("", r.ResolveSlug("junk"))
	s.False(r.MatchPredicate(SlugToysGames).Matches("gizmos"))
}

func (s *ResolverTestSuite) TestLoadAliasFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	content := `aliases:
  - alias: kitchenware
    category: home_kitchen
  - alias: ""
    category: books
  - alias: e-readers
    category: Electronics
`
	s.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	aliases, err := LoadAliasFile(path)
	s.Require().NoError(err)
	s.Len(aliases, 2)

	r := NewResolver(nil, aliases...)
	s.Equal(SlugHomeKitchen, r.ResolveSlug("Kitchenware"))
	s.Equal(SlugElectronics, r.ResolveSlug("E Readers"))
}

func (s *ResolverTestSuite) TestLoadAliasFile_Errors() {
	_, err := LoadAliasFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)

	path := filepath.Join(s.T().TempDir(), "bad.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("aliases: 12\n"), 0644))
	_, err = LoadAliasFile(path)
	s.Error(err)
}
