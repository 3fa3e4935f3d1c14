package cronmatch_test

import (
	"testing"

	"github.com/reugn/go-cronmatch/cronmatch"
	"github.com/reugn/go-cronmatch/internal/assert"
)

func TestMatchTimeComponent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		expr     string
		matching []int
		other    []int
	}{
		{"*", []int{0, 1, 59, 100, -1}, nil},
		{"1,2,3", []int{1, 2, 3}, []int{0, 4}},
		{"*/5", []int{0, 5, 55, 60}, []int{1, 4, 61, 65}},
		{"1-3", []int{1, 2, 3}, []int{0, 4}},
		{"mar", []int{3}, []int{4}},
		{"0,2,4/2", []int{0, 2, 4}, []int{1, 3, 5}},
		{"0-4/2", []int{0, 2, 4}, []int{1, 3, 5}},
		{"sun,tue,thu/2", []int{0, 2, 4}, []int{1, 3, 5}},
		{"sun-thu/2", []int{0, 2, 4}, []int{1, 3, 5}},
		{"0-thu/2", []int{0, 2, 4}, []int{1, 3, 5, 6}},
		{"sun-4/2", []int{0, 2, 4}, []int{1, 3, 5}},
		{"10-59/5", []int{10, 15, 55}, []int{5, 12, 60}},
		{"1-10/3", []int{3, 6, 9}, []int{1, 4, 10}},
		{"jan-jun/2", []int{2, 4, 6}, []int{1, 3, 5, 8}},
		{"january-june", []int{1, 6}, []int{0, 7}},
		{"mon-fri", []int{1, 3, 5}, []int{0, 6}},
		{"5-1", nil, []int{1, 3, 5}},
		{"1,*", []int{1, 100}, nil},
		{"*/-2", []int{0, 2, 60}, []int{1, 62}},
		{"*/2.9", []int{0, 2, 4}, []int{1, 3}},
		{"1.5-3", []int{2, 3}, []int{1}},
		{"13", []int{13}, []int{1}},
	}
	for _, tt := range tests {
		test := tt
		t.Run(test.expr, func(t *testing.T) {
			t.Parallel()
			for _, num := range test.matching {
				ok, err := cronmatch.MatchTimeComponent(test.expr, num)
				assert.IsNil(t, err)
				if !ok {
					t.Fatalf("%q must match %d", test.expr, num)
				}
			}
			for _, num := range test.other {
				ok, err := cronmatch.MatchTimeComponent(test.expr, num)
				assert.IsNil(t, err)
				if ok {
					t.Fatalf("%q must not match %d", test.expr, num)
				}
			}
		})
	}
}

func TestMatchTimeComponentInvalid(t *testing.T) {
	t.Parallel()
	tests := []string{
		"",
		"/",  // modulus empty
		"/2", // no dividend
		"2/", // no divisor
		"2/3/4",
		"2/foo",
		"*/0",
		"*/0.5",
		"-",  // range empty
		"-2", // no from
		"2-", // no to
		"2-3-4",
		"foo",
		"foo-3",
		"1,",
		",1",
		"1,,2",
		"1,2-",
		"**",
		"*-5",
	}
	for _, tt := range tests {
		expr := tt
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			ok, err := cronmatch.MatchTimeComponent(expr, 2)
			assert.ErrorIs(t, err, cronmatch.ErrInvalidExpression)
			assert.Equal(t, ok, false)
		})
	}
}

func TestMatchTimeComponentInvalidBranch(t *testing.T) {
	// the first element matches, the second is malformed
	_, err := cronmatch.MatchTimeComponent("1,foo", 1)
	assert.ErrorIs(t, err, cronmatch.ErrInvalidExpression)
}

func TestMatchTimeComponentIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		ok, err := cronmatch.MatchTimeComponent("0-5,10-59/5", 15)
		assert.IsNil(t, err)
		assert.Equal(t, ok, true)

		ok, err = cronmatch.MatchTimeComponent("0-5,10-59/5", 12)
		assert.IsNil(t, err)
		assert.Equal(t, ok, false)
	}
}
