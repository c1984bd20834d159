package floral_test

import (
	"testing"

	"github.com/gnames/gnflora/pkg/floral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlowerType(t *testing.T) {
	tests := []struct {
		msg     string
		token   string
		res     floral.FlowerType
		wantErr bool
	}{
		{"bisexual", "b", floral.Bisexual, false},
		{"carpellate", "c", floral.Carpellate, false},
		{"staminate", "s", floral.Staminate, false},
		{"unknown token", "x", floral.Bisexual, true},
		{"empty token", "", floral.Bisexual, true},
	}

	for _, tt := range tests {
		ft, err := floral.ParseFlowerType(tt.token)
		if tt.wantErr {
			assert.Error(t, err, tt.msg)
			continue
		}
		require.NoError(t, err, tt.msg)
		assert.Equal(t, tt.res, ft, tt.msg)
	}
}

func TestSymmetryString(t *testing.T) {
	tests := []struct {
		msg   string
		token string
		res   string
	}{
		{"radial is an asterisk", "r", "*"},
		{"bilateral carries its arrow", "up", "X(↑)"},
		{"down arrow", "down", "X(↓)"},
		{"left arrow", "left", "X(←)"},
		{"right arrow", "right", "X(→)"},
		{"diagonal up-left arrow", "upleft", "X(↖)"},
		{"diagonal up-right arrow", "upright", "X(↗)"},
		{"diagonal down-left arrow", "downleft", "X(↙)"},
		{"diagonal down-right arrow", "downright", "X(↘)"},
		{"asymmetric", "a", "↯"},
		{"spiral", "s", "↻"},
		{"disymmetric", "d", "↔"},
	}

	for _, tt := range tests {
		sym, err := floral.ParseSymmetry(tt.token)
		require.NoError(t, err, tt.msg)
		assert.Equal(t, tt.res, sym.String(), tt.msg)
	}

	_, err := floral.ParseSymmetry("sideways")
	assert.Error(t, err, "unknown symmetry token")
}

func TestSymmetryIsBilateral(t *testing.T) {
	assert.True(t, floral.BilateralUp.IsBilateral())
	assert.True(t, floral.BilateralDownRight.IsBilateral())
	assert.False(t, floral.Radial.IsBilateral())
	assert.False(t, floral.Spiral.IsBilateral())
	assert.False(t, floral.Asymmetric.IsBilateral())
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		msg     string
		token   string
		res     string
		wantErr bool
	}{
		{"empty token is zero", "", "0", false},
		{"dash is zero", "-", "0", false},
		{"finite count", "5", "5", false},
		{"threshold stays finite", "30", "30", false},
		{"above threshold collapses to many", "31", "∞", false},
		{"inf is many", "inf", "∞", false},
		{"words are rejected", "five", "", true},
		{"negative counts are rejected", "-3", "", true},
	}

	for _, tt := range tests {
		c, err := floral.ParseCount(tt.token)
		if tt.wantErr {
			assert.Error(t, err, tt.msg)
			continue
		}
		require.NoError(t, err, tt.msg)
		assert.Equal(t, tt.res, c.String(), tt.msg)
	}
}

func TestPartLetters(t *testing.T) {
	letters := map[floral.Part]string{
		floral.Tepals:  "T",
		floral.Calyx:   "K",
		floral.Petals:  "C",
		floral.Stamens: "A",
		floral.Carpels: "G",
	}
	for part, letter := range letters {
		assert.Equal(t, letter, part.String())
		got, err := floral.ParsePart(letter)
		require.NoError(t, err)
		assert.Equal(t, part, got, "letters round-trip")
	}

	_, err := floral.ParsePart("Z")
	assert.Error(t, err, "unknown part letter")
}

func TestParseOvary(t *testing.T) {
	tests := []struct {
		msg     string
		token   string
		res     floral.Ovary
		wantErr bool
	}{
		{"dash means no ovary", "-", floral.OvaryNone, false},
		{"empty means no ovary", "", floral.OvaryNone, false},
		{"superior", "s", floral.OvarySuperior, false},
		{"inferior", "i", floral.OvaryInferior, false},
		{"both positions", "s;i", floral.OvaryBoth, false},
		{"both positions reversed", "i;s", floral.OvaryBoth, false},
		{"unknown position", "x", floral.OvaryNone, true},
	}

	for _, tt := range tests {
		o, err := floral.ParseOvary(tt.token)
		if tt.wantErr {
			assert.Error(t, err, tt.msg)
			continue
		}
		require.NoError(t, err, tt.msg)
		assert.Equal(t, tt.res, o, tt.msg)
	}
}

func TestParseFruit(t *testing.T) {
	tests := []struct {
		msg   string
		token string
		res   string
	}{
		{"dash means no fruit", "-", "no fruit"},
		{"singular spelling", "berry", "berry"},
		{"plural spelling", "berries", "berry"},
		{"fleshy capsule folds into capsule", "fleshy capsule", "capsule"},
		{"multi-word fruit", "dehiscent drupe", "dehiscent drupe"},
		{"aggregate of nuts", "aggregate of nuts", "aggregate of nuts"},
		{"samaras", "samaras", "samara"},
	}

	for _, tt := range tests {
		f, err := floral.ParseFruit(tt.token)
		require.NoError(t, err, tt.msg)
		assert.Equal(t, tt.res, f.String(), tt.msg)
	}

	_, err := floral.ParseFruit("pumpkin")
	assert.Error(t, err, "unknown fruit")
}

func TestSterilityString(t *testing.T) {
	assert.Equal(t, "•", floral.Sterile.String())
	assert.Equal(t, "", floral.Fertile.String())
}
