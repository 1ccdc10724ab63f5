package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Iron Temple", "iron-temple"},
		{"  Gym & Fitness!  ", "gym-fitness"},
		{"Café São Paulo", "cafe-sao-paulo"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE", "upper-case"},
		{"multiple   spaces", "multiple-spaces"},
		{"---", ""},
		{"24/7 Gym", "24-7-gym"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}
