package utils

import "testing"

// Malformed photo payloads must come back as errors, never panic; the
// upload endpoints feed user input straight into this function.
func TestUploadMealPhotoRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no comma", data: "data:image/jpeg;base64"},
		{name: "comma but no data prefix", data: "notadatauri,AAAA"},
		{name: "colon-less meta", data: "image/jpeg;base64,AAAA"},
		{name: "empty input", data: ""},
		{name: "wrong scheme", data: "blob:image/png;base64,AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UploadMealPhoto(tt.data, 1); err == nil {
				t.Errorf("UploadMealPhoto(%q) should fail", tt.data)
			}
		})
	}
}
