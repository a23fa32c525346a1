package locale

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en_US", "en_US"},
		{"en-US", "en_US"},
		{"en-us", "en_US"},
		{"EN_us", "en_US"},
		{" de_DE ", "de_DE"},
		{"fr_BE", "fr_BE"},

		// Bare languages resolve to the most likely region.
		{"en", "en_US"},
		{"de", "de_DE"},
		{"es", "es_ES"},
		{"fr", "fr_FR"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "_base", "not a locale", "123"} {
		t.Run(input, func(t *testing.T) {
			_, err := Normalize(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLocale)

			var le *Error
			require.True(t, errors.As(err, &le))
			assert.Equal(t, input, le.Locale)
		})
	}
}

func TestDefaultRegistry_Available(t *testing.T) {
	names := Default().Available()
	assert.Equal(t, []string{"de_DE", "en_GB", "en_US", "es_ES", "fr_FR"}, names)
	assert.Contains(t, names, DefaultLocale)
}

func TestDefaultRegistry_LoadEveryLocale(t *testing.T) {
	reg := Default()
	for _, name := range reg.Available() {
		t.Run(name, func(t *testing.T) {
			loc, err := reg.Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, loc.Name)
			assert.Equal(t, name, loc.Data.Locale)
			if name == "en_GB" {
				assert.Equal(t, "en_US", loc.Data.Parent)
			} else {
				assert.Empty(t, loc.Data.Parent)
			}

			d := loc.Data
			assert.NotEmpty(t, d.Person.FirstNamesMale)
			assert.NotEmpty(t, d.Person.FirstNamesFemale)
			assert.NotEmpty(t, d.Person.LastNames)
			assert.NotEmpty(t, d.Address.CityFormats)
			assert.NotEmpty(t, d.Address.StreetAddressFormats)
			assert.NotEmpty(t, d.Phone.Formats)
			assert.NotEmpty(t, d.Company.Formats)

			// Inherited from _base.
			assert.NotEmpty(t, d.Text.Words)
			assert.NotEmpty(t, d.ISO.Countries)
			assert.NotEmpty(t, d.Blood.Types)
			assert.NotEmpty(t, d.Internet.SafeEmailDomains)
		})
	}
}

func TestDefaultRegistry_ParentChain(t *testing.T) {
	gb, err := Default().Load("en_GB")
	require.NoError(t, err)
	us, err := Default().Load("en_US")
	require.NoError(t, err)

	assert.Equal(t, "en_US", gb.Data.Parent, "the declared parent survives the merge")
	assert.Empty(t, us.Data.Parent)

	// Overridden by en_GB.
	assert.Contains(t, gb.Data.Address.StreetSuffixes, "Mews")
	assert.NotContains(t, us.Data.Address.StreetSuffixes, "Mews")
	assert.Equal(t, "GB", gb.Data.Payment.IBANCountry)

	// Inherited from en_US.
	assert.Equal(t, us.Data.Company.JobTitles, gb.Data.Company.JobTitles)
	assert.Equal(t, us.Data.Text.RealText, gb.Data.Text.RealText)
	assert.Equal(t, us.Data.Address.CityFormats, gb.Data.Address.CityFormats)

	// Inherited from _base through en_US.
	assert.Equal(t, us.Data.Text.Words, gb.Data.Text.Words)
}

func TestDefaultRegistry_MissingData(t *testing.T) {
	es, err := Default().Load("es")
	require.NoError(t, err)

	assert.Equal(t, "es_ES", es.Name)
	assert.Empty(t, es.Data.Text.RealText)
	assert.Nil(t, es.Data.Address.Coordinates)
	assert.Empty(t, es.Data.Company.JobTitles)
}

func TestDefaultRegistry_Caches(t *testing.T) {
	a, err := Default().Load("fr_FR")
	require.NoError(t, err)
	b, err := Default().Load("fr-fr")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDefaultRegistry_UnknownLocale(t *testing.T) {
	_, err := Default().Load("fr_BE")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLocale)
	assert.False(t, Default().Has("fr_BE"))
	assert.True(t, Default().Has("fr-FR"))
}

func TestLocale_Region(t *testing.T) {
	loc, err := Default().Load("de")
	require.NoError(t, err)
	assert.Equal(t, "DE", loc.Region())
}

func TestRegistry_InvalidData(t *testing.T) {
	base := []byte("locale: _base\ntext:\n  words: [a, b]\n")

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "locale: xx_XX\npersno:\n  last_names: [A]\n"},
		{"empty list", "locale: xx_XX\nperson:\n  last_names: []\n"},
		{"wrong type", "locale: xx_XX\nperson:\n  last_names: Smith\n"},
		{"coordinates out of range", "locale: xx_XX\naddress:\n  coordinates: {lat_min: -100, lat_max: 0, lon_min: 0, lon_max: 1}\n"},
		{"bad yaml", "locale: xx_XX\nperson: [\n"},
		{"name mismatch", "locale: yy_YY\n"},
		{"missing parent", "locale: xx_XX\nparent: zz_ZZ\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(fstest.MapFS{
				"_base.yaml": {Data: base},
				"xx_XX.yaml": {Data: []byte(tt.doc)},
			})
			// xx_XX does not parse as a real language, so go through loadChain.
			_, err := reg.loadChain("xx_XX")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
}

func TestRegistry_ParentCycle(t *testing.T) {
	reg := NewRegistry(fstest.MapFS{
		"_base.yaml": {Data: []byte("locale: _base\n")},
		"aa_AA.yaml": {Data: []byte("locale: aa_AA\nparent: bb_BB\n")},
		"bb_BB.yaml": {Data: []byte("locale: bb_BB\nparent: aa_AA\n")},
	})

	_, err := reg.loadChain("aa_AA")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Contains(t, err.Error(), "too deep")
}

func TestRegistry_MergeOverridesOnlyDefinedKeys(t *testing.T) {
	reg := NewRegistry(fstest.MapFS{
		"_base.yaml": {Data: []byte("locale: _base\nperson:\n  last_names: [Base]\n  titles_male: [Mr.]\n")},
		"aa_AA.yaml": {Data: []byte("locale: aa_AA\nperson:\n  last_names: [Child]\n")},
	})

	data, err := reg.loadChain("aa_AA")
	require.NoError(t, err)
	assert.Equal(t, []string{"Child"}, data.Person.LastNames)
	assert.Equal(t, []string{"Mr."}, data.Person.TitlesMale)
	assert.Equal(t, "aa_AA", data.Locale)
}
