package fsx_test

import (
	"testing"

	"github.com/Abraxas-365/mailbatch/pkg/errx"
	"github.com/Abraxas-365/mailbatch/pkg/fsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw  string
		want fsx.Location
	}{
		{"recipients.xlsx", fsx.Location{Scheme: fsx.SchemeFile, Path: "recipients.xlsx"}},
		{"/data/in/recipients.csv", fsx.Location{Scheme: fsx.SchemeFile, Path: "/data/in/recipients.csv"}},
		{"file:///tmp/r.csv", fsx.Location{Scheme: fsx.SchemeFile, Path: "/tmp/r.csv"}},
		{"s3://mail-lists/2024/03/Mappe2.xlsx", fsx.Location{Scheme: fsx.SchemeS3, Bucket: "mail-lists", Path: "2024/03/Mappe2.xlsx"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := fsx.ParseLocation(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLocation_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "s3://bucket-only", "s3:///key"} {
		_, err := fsx.ParseLocation(raw)
		assert.True(t, errx.Is(err, fsx.ErrInvalidLocation), "raw=%q err=%v", raw, err)
	}
}

func TestLocation_String(t *testing.T) {
	loc := fsx.Location{Scheme: fsx.SchemeS3, Bucket: "b", Path: "k/x.csv"}
	assert.Equal(t, "s3://b/k/x.csv", loc.String())
}
