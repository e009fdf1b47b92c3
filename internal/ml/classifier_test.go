package ml

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

const treeArtifact = `{
  "feature_names": ["age", "gender_Female", "occupation_Tech"],
  "classes": ["electronics", "beauty_personal_care", "books"],
  "root": {
    "feature": "occupation_Tech",
    "threshold": 0.5,
    "left": {
      "feature": "gender_Female",
      "threshold": 0.5,
      "left": {"label": "books"},
      "right": {"label": "beauty_personal_care"}
    },
    "right": {"label": "electronics"}
  }
}`

type recordingPredictor struct {
	label string
	err   error
	panic bool
	rows  []FeatureRow
}

func (p *recordingPredictor) PredictOne(row FeatureRow) (string, error) {
	p.rows = append(p.rows, row)
	if p.panic {
		panic("model exploded")
	}
	return p.label, p.err
}

type ClassifierTestSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}

func (s *ClassifierTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ClassifierTestSuite) TestDecisionTree_Predicts() {
	tree, err := ParseDecisionTree([]byte(treeArtifact))
	s.Require().NoError(err)

	classifier := NewStaticClassifier(tree, s.logger)
	s.Equal([]string{"age", "gender_Female", "occupation_Tech"}, classifier.ExpectedColumns())

	label, ok := classifier.PredictCategory(&Profile{Occupation: "programmer"})
	s.True(ok)
	s.Equal("electronics", label)

	label, ok = classifier.PredictCategory(&Profile{Gender: "F", Occupation: "nurse"})
	s.True(ok)
	s.Equal("beauty_personal_care", label)

	label, ok = classifier.PredictCategory(&Profile{Age: "70"})
	s.True(ok)
	s.Equal("books", label)
}

func (s *ClassifierTestSuite) TestDecisionTree_CategoricalSplit() {
	equals := "Retired"
	tree := &DecisionTree{Root: &TreeNode{
		Feature: FeatureEmploymentStatus,
		Equals:  &equals,
		Left:    &TreeNode{Label: "health"},
		Right:   &TreeNode{Label: "sports_outdoors"},
	}}

	label, err := tree.PredictOne(BuildFeatures(&Profile{EmploymentStatus: "rt"}, nil))
	s.NoError(err)
	s.Equal("health", label)

	label, err = tree.PredictOne(BuildFeatures(&Profile{EmploymentStatus: "student"}, nil))
	s.NoError(err)
	s.Equal("sports_outdoors", label)
}

func (s *ClassifierTestSuite) TestDecisionTree_Malformed() {
	_, err := ParseDecisionTree([]byte(`{"feature_names": []}`))
	s.Error(err)

	_, err = ParseDecisionTree([]byte(`not json`))
	s.Error(err)

	tree := &DecisionTree{Root: &TreeNode{Feature: "age", Left: &TreeNode{Label: "books"}}}
	_, err = tree.PredictOne(BuildFeatures(&Profile{Age: "10"}, nil))
	s.Error(err)
}

func (s *ClassifierTestSuite) TestPredictCategory_NilProfileSkipsModel() {
	predictor := &recordingPredictor{label: "books"}
	classifier := NewStaticClassifier(predictor, s.logger)

	_, ok := classifier.PredictCategory(nil)
	s.False(ok)
	s.Empty(predictor.rows)
}

func (s *ClassifierTestSuite) TestPredictCategory_UsesNaturalLayoutWithoutSchema() {
	predictor := &recordingPredictor{label: "  toys_games "}
	classifier := NewStaticClassifier(predictor, s.logger)

	label, ok := classifier.PredictCategory(&Profile{Age: "31"})
	s.True(ok)
	s.Equal("toys_games", label)
	s.Require().Len(predictor.rows, 1)
	s.Equal(NaturalColumns(), predictor.rows[0].Columns())
}

func (s *ClassifierTestSuite) TestPredictCategory_AbsorbsFailures() {
	testCases := []struct {
		name      string
		predictor *recordingPredictor
	}{
		{"error", &recordingPredictor{err: errors.New("bad input")}},
		{"panic", &recordingPredictor{panic: true}},
		{"blank label", &recordingPredictor{label: "   "}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			classifier := NewStaticClassifier(tc.predictor, s.logger)
			_, ok := classifier.PredictCategory(&Profile{Age: "20"})
			s.False(ok)
		})
	}
}

func (s *ClassifierTestSuite) TestLoadFailureIsPermanent() {
	calls := 0
	classifier := NewCategoryClassifier(func() (CategoryPredictor, error) {
		calls++
		return nil, errors.New("corrupt artifact")
	}, s.logger)

	for range 3 {
		_, ok := classifier.PredictCategory(&Profile{Age: "44"})
		s.False(ok)
	}
	s.Equal(1, calls)
	s.False(classifier.Available())
	s.Nil(classifier.ExpectedColumns())
	s.Error(classifier.Err())
}

func (s *ClassifierTestSuite) TestLoaderPanicIsAbsorbed() {
	classifier := NewCategoryClassifier(func() (CategoryPredictor, error) {
		panic("unpickling failed")
	}, s.logger)

	_, ok := classifier.PredictCategory(&Profile{Age: "44"})
	s.False(ok)
	s.ErrorContains(classifier.Err(), "panicked")
}

func (s *ClassifierTestSuite) TestArtifactStore_LoadsFromFirstDirectory() {
	first, second := s.T().TempDir(), s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(second, "classifier.json"), []byte(treeArtifact), 0644))

	store := NewArtifactStore([]string{first, second}, "classifier.json", "rules.json", s.logger)

	path, err := store.Locate("classifier.json")
	s.Require().NoError(err)
	s.Equal(filepath.Join(second, "classifier.json"), path)

	classifier := NewCategoryClassifier(store.LoadClassifier, s.logger)
	s.True(classifier.Available())

	_, err = store.LoadRules()
	s.ErrorIs(err, ErrArtifactNotFound)

	reports := store.Describe()
	s.Require().Len(reports, 2)
	s.Equal(path, reports[0].Path)
	s.Equal(3, reports[0].Entries)
	s.NotEmpty(reports[1].Error)
}
