package quiz

import (
	"errors"
	"testing"

	"github.com/studyzap/studyzap-backend/internal/model"
)

func TestValidatePaper(t *testing.T) {
	tests := []struct {
		name    string
		paper   *model.Paper
		wantErr bool
	}{
		{
			name:    "nil paper",
			paper:   nil,
			wantErr: true,
		},
		{
			name:    "zero questions",
			paper:   &model.Paper{ID: "empty"},
			wantErr: true,
		},
		{
			name: "single option question",
			paper: &model.Paper{ID: "p", Questions: []model.Question{
				{ID: 1, Options: []string{"only"}, CorrectAnswer: 0},
			}},
			wantErr: true,
		},
		{
			name: "correct answer negative",
			paper: &model.Paper{ID: "p", Questions: []model.Question{
				{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: -1},
			}},
			wantErr: true,
		},
		{
			name: "correct answer past options",
			paper: &model.Paper{ID: "p", Questions: []model.Question{
				{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 2},
			}},
			wantErr: true,
		},
		{
			name: "bad question in the middle",
			paper: &model.Paper{ID: "p", Questions: []model.Question{
				{ID: 1, Options: []string{"a", "b"}, CorrectAnswer: 0},
				{ID: 2, Options: []string{"a", "b", "c"}, CorrectAnswer: 3},
				{ID: 3, Options: []string{"a", "b"}, CorrectAnswer: 1},
			}},
			wantErr: true,
		},
		{
			name:    "valid paper",
			paper:   threeQuestionPaper(),
			wantErr: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePaper(tc.paper)
			if tc.wantErr {
				if !errors.Is(err, ErrPaperIntegrity) {
					t.Fatalf("ValidatePaper = %v, want ErrPaperIntegrity", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidatePaper = %v, want nil", err)
			}
		})
	}
}
