package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeModelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"devices", "Devices"},
		{"circuit-types", "Circuit Types"},
		{"ip-address-pools", "Ip Address Pools"},
		{"a--b", "A B"},
		{"-devices-", "Devices"},
		{"", ""},
		{"--", ""},
		{"élan", "Élan"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeModelName(tt.in))
		})
	}
}
