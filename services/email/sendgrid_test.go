package emailsvc

import "testing"

func TestStatusError(t *testing.T) {
	tests := []struct {
		code    int
		wantErr bool
	}{
		{code: 200},
		{code: 202},
		{code: 100, wantErr: true},
		{code: 302, wantErr: true},
		{code: 400, wantErr: true},
		{code: 500, wantErr: true},
	}
	for _, tt := range tests {
		if err := statusError(tt.code, "body"); (err != nil) != tt.wantErr {
			t.Errorf("statusError(%d) = %v; wantErr %v", tt.code, err, tt.wantErr)
		}
	}
}
