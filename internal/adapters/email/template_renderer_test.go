package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extracurricular/internal/domain"
)

func TestTemplateRenderer_Render(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.SignupEmailData{
		Email:     "testuser@example.com",
		Activity:  "Chess Club",
		Schedule:  "Fridays, 3:30 PM - 5:00 PM",
		SpotsLeft: 9,
	}

	tests := []struct {
		template    string
		wantSubject string
		wantInBody  []string
	}{
		{
			template:    "signup_confirmation",
			wantSubject: "You are signed up for Chess Club",
			wantInBody:  []string{"testuser@example.com", "Chess Club", "Fridays, 3:30 PM - 5:00 PM", "9"},
		},
		{
			template:    "withdrawal_confirmation",
			wantSubject: "You have been unregistered from Chess Club",
			wantInBody:  []string{"testuser@example.com", "Chess Club"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			subject, html, text, err := r.Render(tt.template, data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
			for _, s := range tt.wantInBody {
				assert.Contains(t, html, s)
				assert.Contains(t, text, s)
			}
		})
	}
}

func TestTemplateRenderer_EscapesHTML(t *testing.T) {
	r := NewTemplateRenderer()
	_, html, text, err := r.Render("signup_confirmation", &domain.SignupEmailData{
		Email:    "<script>@example.com",
		Activity: "Chess Club",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, text, "<script>")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("welcome", &domain.SignupEmailData{})
	require.Error(t, err)
}
