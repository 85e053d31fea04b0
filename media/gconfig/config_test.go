package gconfig

import "testing"

func TestDefaultRenderMeta(t *testing.T) {

	metaData := defaultRenderMeta()

	if metaData.WindowWidth != 640 || metaData.WindowHeight != 480 {
		t.Errorf("window size = %vx%v, want 640x480", metaData.WindowWidth, metaData.WindowHeight)
	}
	if metaData.WindowTitle != "Hello World" {
		t.Errorf("window title = %q", metaData.WindowTitle)
	}
	if metaData.EffectName != "basic" {
		t.Errorf("effect name = %q", metaData.EffectName)
	}
	if metaData.SwapInterval != 0 {
		t.Errorf("swap interval = %v", metaData.SwapInterval)
	}
}

func TestRenderMetaFromJson(t *testing.T) {

	tests := []struct {
		name       string
		metaJson   string
		wantErr    bool
		wantWidth  int
		wantTitle  string
		wantEffect string
	}{
		{
			name:       "partial override keeps remaining defaults",
			metaJson:   `{"WindowWidth":1024,"EffectName":"pulse"}`,
			wantWidth:  1024,
			wantTitle:  "Hello World",
			wantEffect: "pulse",
		},
		{
			name:       "empty object keeps all defaults",
			metaJson:   `{}`,
			wantWidth:  640,
			wantTitle:  "Hello World",
			wantEffect: "basic",
		},
		{
			name:       "broken json falls back to defaults",
			metaJson:   `{"WindowWidth":`,
			wantErr:    true,
			wantWidth:  640,
			wantTitle:  "Hello World",
			wantEffect: "basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metaData, jsonErr := renderMetaFromJson(tt.metaJson)
			if (jsonErr != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", jsonErr, tt.wantErr)
			}
			if metaData.WindowWidth != tt.wantWidth {
				t.Errorf("WindowWidth = %v, want %v", metaData.WindowWidth, tt.wantWidth)
			}
			if metaData.WindowTitle != tt.wantTitle {
				t.Errorf("WindowTitle = %q, want %q", metaData.WindowTitle, tt.wantTitle)
			}
			if metaData.EffectName != tt.wantEffect {
				t.Errorf("EffectName = %q, want %q", metaData.EffectName, tt.wantEffect)
			}
		})
	}
}
