package articulo

import "testing"

func TestExtractNumber(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "articulo_with_bis_suffix",
			text:     "Artículo 41 bis",
			expected: "41 bis",
		},
		{
			name:     "unaccented_articulo",
			text:     "articulo 7",
			expected: "7",
		},
		{
			name:     "abbreviated_art_with_dot",
			text:     "Art. 5",
			expected: "5",
		},
		{
			name:     "abbreviated_art_without_dot",
			text:     "art 15",
			expected: "15",
		},
		{
			name:     "ter_suffix",
			text:     "artículo 12 ter",
			expected: "12 ter",
		},
		{
			name:     "quinquies_suffix",
			text:     "articulo 3 quinquies",
			expected: "3 quinquies",
		},
		{
			name:     "marker_inside_longer_text",
			text:     "inciso segundo del artículo 19",
			expected: "19",
		},
		{
			name:     "bare_number_with_whitespace",
			text:     "  123  ",
			expected: "123",
		},
		{
			name:     "no_article_reference",
			text:     "foo",
			expected: "",
		},
		{
			name:     "number_embedded_in_prose_is_not_bare",
			text:     "inciso 4",
			expected: "",
		},
		{
			name:     "empty_input",
			text:     "",
			expected: "",
		},
		{
			name:     "whitespace_only",
			text:     "   ",
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractNumber(tc.text); got != tc.expected {
				t.Errorf("ExtractNumber(%q) = %q, expected %q", tc.text, got, tc.expected)
			}
		})
	}
}
