package media

import (
	"math"
	"testing"
)

func TestParseFFmpegDuration(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    float64
		wantErr bool
	}{
		{
			name:   "typical banner line",
			output: "Input #0, wav, from 'audio.wav':\n  Duration: 00:03:20.45, bitrate: 256 kb/s",
			want:   200.45,
		},
		{
			name:   "hours present",
			output: "  Duration: 01:02:03.50, start: 0.000000",
			want:   3723.5,
		},
		{
			name:    "no duration line",
			output:  "Output file #0 does not contain any stream",
			wantErr: true,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFFmpegDuration(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFFmpegDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ParseFFmpegDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
