package renderer

import (
	"strings"
	"testing"
	"time"

	"ukazaniya-bot/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceURL = "http://www.patriarchia.ru/bu/2025-01-05"

func request(mode domain.Mode) domain.RenderRequest {
	return domain.RenderRequest{Date: domain.NewDateValue(2025, time.January, 5), Mode: mode}
}

func samplePage() *domain.Page {
	return &domain.Page{
		Title: "Неделя 29-я по Пятидесятнице",
		Items: []domain.ExtractedItem{
			{Title: "Святых отец", Content: "_Служба по Минее._"},
			{Title: "Чтения дня", Content: "Лит. – [Евр. 11:9–10](https://example.org/heb)"},
		},
		Extra: []string{"Первое примечание.", "Второе примечание."},
	}
}

func TestRender_ShortMode(t *testing.T) {
	msg := NewRenderer().Render(request(domain.ModeShort), samplePage(), sourceURL)

	assert.Equal(t,
		"*Богослужебные указания 05.01.2025*\n\n"+
			"*Неделя 29-я по Пятидесятнице*\n\n"+
			"*Святых отец* \n_Служба по Минее._\n\n"+
			"*Чтения дня* \nЛит. – [Евр. 11:9–10](https://example.org/heb)",
		msg.Text)
	assert.Equal(t, domain.ModeShort, msg.Mode)
	assert.Equal(t, sourceURL, msg.SourceURL)
	assert.Equal(t, "05.01.2025", msg.Date.UserString())
}

func TestRender_ShortModeNeverIncludesExtra(t *testing.T) {
	page := samplePage()
	page.Extra = []string{"tiny", strings.Repeat("x", 10)}

	msg := NewRendererWithCeiling(1 << 20).Render(request(domain.ModeShort), page, sourceURL)

	assert.NotContains(t, msg.Text, "tiny")
	assert.NotContains(t, msg.Text, "xxxxxxxxxx")
}

func TestRender_FullModeAppendsExtra(t *testing.T) {
	msg := NewRenderer().Render(request(domain.ModeFull), samplePage(), sourceURL)

	assert.True(t, strings.HasSuffix(msg.Text, "\n\nПервое примечание.\n\nВторое примечание."))
	assert.Equal(t, domain.ModeFull, msg.Mode)
}

func TestRender_FullModeUsesAcceptedRunningTotal(t *testing.T) {
	header := "*Богослужебные указания 05.01.2025*"
	titleLen := 100 - TextLength(header) - len(Separator) - 2
	require.Positive(t, titleLen)

	page := &domain.Page{
		Title: strings.Repeat("т", titleLen),
		Extra: []string{
			strings.Repeat("a", 100),
			strings.Repeat("b", 3950),
			strings.Repeat("c", 200),
		},
	}

	base := NewRenderer().Render(request(domain.ModeShort), page, sourceURL)
	require.Equal(t, 100, TextLength(base.Text))

	msg := NewRenderer().Render(request(domain.ModeFull), page, sourceURL)

	assert.Contains(t, msg.Text, page.Extra[0])
	assert.NotContains(t, msg.Text, "b")
	assert.Contains(t, msg.Text, page.Extra[2])
	assert.Less(t, TextLength(msg.Text), MaxMessageLength)
}

func TestRender_FullModeRespectsCeiling(t *testing.T) {
	tests := []struct {
		name    string
		ceiling int
		extra   []string
		want    []string
		notWant []string
	}{
		{
			name:    "nothing fits",
			ceiling: 10,
			extra:   []string{"one", "two"},
			notWant: []string{"one", "two"},
		},
		{
			name:    "exact ceiling is rejected",
			ceiling: TextLength("*Богослужебные указания 05.01.2025*") + 2 + 3,
			extra:   []string{"one"},
			notWant: []string{"one"},
		},
		{
			name:    "one below ceiling is accepted",
			ceiling: TextLength("*Богослужебные указания 05.01.2025*") + 2 + 3 + 1,
			extra:   []string{"one"},
			want:    []string{"one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &domain.Page{Extra: tt.extra}
			msg := NewRendererWithCeiling(tt.ceiling).Render(request(domain.ModeFull), page, sourceURL)

			for _, w := range tt.want {
				assert.Contains(t, msg.Text, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, msg.Text, nw)
			}
		})
	}
}

func TestRender_CountsUTF16Units(t *testing.T) {
	assert.Equal(t, 2, TextLength("\U0001F600"))
	assert.Equal(t, 3, TextLength("Бог"))
}

func TestRender_Controls(t *testing.T) {
	msg := NewRenderer().Render(request(domain.ModeShort), samplePage(), sourceURL)

	require.Len(t, msg.Controls, 2)
	require.Len(t, msg.Controls[0], 2)
	require.Len(t, msg.Controls[1], 1)

	assert.Equal(t, domain.Control{Label: "Короткие указания", Action: "short_05.01.2025"}, msg.Controls[0][0])
	assert.Equal(t, domain.Control{Label: "Полные указания", Action: "full_05.01.2025"}, msg.Controls[0][1])

	link := msg.Controls[1][0]
	assert.True(t, link.IsLink())
	assert.Equal(t, "Богослужебные указания 05.01.2025", link.Label)
	assert.Equal(t, sourceURL, link.URL)
}

func TestRender_ItemWithoutTitle(t *testing.T) {
	page := &domain.Page{
		Title: "Title",
		Items: []domain.ExtractedItem{{Content: "_only content_"}, {}},
	}

	msg := NewRenderer().Render(request(domain.ModeShort), page, sourceURL)

	assert.True(t, strings.HasSuffix(msg.Text, "*Title*\n\n_only content_"))
	assert.NotContains(t, msg.Text, "undefined")
}

func TestRender_NilPage(t *testing.T) {
	msg := NewRenderer().Render(request(domain.ModeFull), nil, sourceURL)

	assert.Equal(t, "*Богослужебные указания 05.01.2025*", msg.Text)
	assert.Len(t, msg.Controls, 2)
}
