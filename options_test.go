package argopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSet_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		build       func(*OptionSet)
		expectKinds []OptionFlawKind
	}{
		{
			name:        "empty set is valid",
			build:       func(s *OptionSet) {},
			expectKinds: nil,
		},
		{
			name: "normal options are valid",
			build: func(s *OptionSet) {
				s.AddLong("verbose", Flag).AddShort('v', Flag)
				s.AddLong("output", DataRequired).AddShort('o', DataRequired)
			},
			expectKinds: nil,
		},
		{
			name: "empty long name",
			build: func(s *OptionSet) {
				s.AddLong("", Flag)
			},
			expectKinds: []OptionFlawKind{LongEmpty},
		},
		{
			name: "long name with equals",
			build: func(s *OptionSet) {
				s.AddLong("foo=bar", Flag)
			},
			expectKinds: []OptionFlawKind{LongIncludesEquals},
		},
		{
			name: "short is dash",
			build: func(s *OptionSet) {
				s.AddShort('-', Flag)
			},
			expectKinds: []OptionFlawKind{ShortIsDash},
		},
		{
			name: "duplicate long",
			build: func(s *OptionSet) {
				s.AddLong("foo", Flag)
				s.AddLong("foo", DataRequired)
			},
			expectKinds: []OptionFlawKind{LongDuplicate},
		},
		{
			name: "duplicate short",
			build: func(s *OptionSet) {
				s.AddShort('x', Flag)
				s.AddShort('x', DataRequired)
			},
			expectKinds: []OptionFlawKind{ShortDuplicate},
		},
		{
			name: "duplicate reported once",
			build: func(s *OptionSet) {
				s.AddLong("foo", Flag)
				s.AddLong("foo", Flag)
				s.AddLong("foo", Flag)
			},
			expectKinds: []OptionFlawKind{LongDuplicate},
		},
		{
			name: "multiple distinct flaws collected",
			build: func(s *OptionSet) {
				s.AddLong("", Flag)
				s.AddShort('-', Flag)
			},
			expectKinds: []OptionFlawKind{LongEmpty, ShortIsDash},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var s OptionSet
			tc.build(&s)

			flaws := s.Validate()
			var kinds []OptionFlawKind
			for _, f := range flaws {
				kinds = append(kinds, f.Kind)
			}
			assert.Equal(t, tc.expectKinds, kinds)
			assert.Equal(t, len(tc.expectKinds) == 0, s.IsValid())
		})
	}
}

func TestOptionSet_IsEmpty(t *testing.T) {
	var s OptionSet
	assert.True(t, s.IsEmpty())
	s.AddLong("foo", Flag)
	assert.False(t, s.IsEmpty())
}
