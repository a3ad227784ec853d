package target

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/wcps.go/internal/exc"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		target string
		want   string
	}{
		{target: "queries/a.wcps", want: "/queries/a.wcps"},
		{target: "./a.wcps", want: "/a.wcps"},
		{target: " queries/../a.wcps ", want: "/a.wcps"},
		{target: "/srv/a.wcps", want: "/srv/a.wcps"},
		{target: "file:///queries", want: "/queries"},
		{target: "file://localhost/queries/a.wcps", want: "/queries/a.wcps"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.target, func(t *testing.T) {
			t.Parallel()
			actual, err := Normalize(testCase.target)
			require.NoError(t, err)
			require.Equal(t, testCase.want, actual)
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		target string
		code   string
	}{
		{target: "", code: exc.CodeFileNotFound},
		{target: "s3://bucket/a.wcps", code: exc.CodeUnsuportedFileSystemOperation},
		{target: "https://example.com/a.wcps", code: exc.CodeUnsuportedFileSystemOperation},
		{target: "file://remote/a.wcps", code: exc.CodeUnsuportedFileSystemOperation},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.target, func(t *testing.T) {
			t.Parallel()
			_, err := Normalize(testCase.target)
			require.Error(t, err)
			require.Equal(t, testCase.code, exc.CodeOf(err))
		})
	}
}
