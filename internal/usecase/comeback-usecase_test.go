package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/iamvkosarev/replyme/internal/comeback"
	"github.com/iamvkosarev/replyme/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	raw     string
	err     error
	calls   int
	prompts []string
	modes   []model.Mode
}

func (f *fakeModel) CallModel(_ context.Context, prompt string, mode model.Mode) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.modes = append(f.modes, mode)
	return f.raw, f.err
}

const validRaw = `Sure! {"replies": [
	{"tone": "savage", "text": "Bold of you to assume I care.", "explanation": "Dismissive"},
	{"tone": "savage", "text": "I'd agree with you but then we'd both be wrong.", "explanation": "Classic"},
	{"tone": "savage", "text": "Noted. Filed under irrelevant.", "explanation": "Cold"}
]}`

func TestComebackUsecase_Generate_Live(t *testing.T) {
	fake := &fakeModel{raw: validRaw}
	uc := NewComebackUsecase(ComebackUsecaseDeps{Model: fake})

	result, err := uc.Generate(context.Background(), "you're so slow", model.ToneSavage, model.ModeUnfiltered)
	require.NoError(t, err)

	assert.Equal(t, model.ReplySourceLive, result.Source)
	assert.Equal(t, "Bold of you to assume I care.", result.Replies[0].Text)
	assert.Equal(t, model.ToneSavage, result.Replies[2].Tone)
	require.Equal(t, 1, fake.calls)
	assert.Equal(t, comeback.BuildPrompt("you're so slow", model.ToneSavage, model.ModeUnfiltered), fake.prompts[0])
	assert.Equal(t, model.ModeUnfiltered, fake.modes[0])
}

func TestComebackUsecase_Generate_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{
			name:  "transport failure",
			model: &fakeModel{err: &model.TransportError{StatusCode: 503, Err: errors.New("unavailable")}},
		},
		{
			name:  "timeout",
			model: &fakeModel{err: &model.TransportError{Err: context.DeadlineExceeded}},
		},
		{
			name:  "empty response",
			model: &fakeModel{err: model.ErrEmptyResponse},
		},
		{
			name:  "prose only",
			model: &fakeModel{raw: "I can't help with that."},
		},
		{
			name:  "too few replies",
			model: &fakeModel{raw: `{"replies": [{"tone": "savage", "text": "only one"}]}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewComebackUsecase(ComebackUsecaseDeps{Model: tt.model})

			result, err := uc.Generate(context.Background(), "nice try", model.ToneSavage, model.ModeStandard)
			require.NoError(t, err)

			assert.Equal(t, model.ReplySourceFallback, result.Source)
			assert.Equal(t, comeback.FallbackFor(model.ToneSavage), result.Replies)
			assert.Equal(t, 1, tt.model.calls)
		})
	}
}

func TestComebackUsecase_Generate_Rejected(t *testing.T) {
	fake := &fakeModel{raw: validRaw}
	uc := NewComebackUsecase(ComebackUsecaseDeps{Model: fake})

	_, err := uc.Generate(context.Background(), "I will KILL you", model.ToneSavage, model.ModeStandard)
	assert.ErrorIs(t, err, model.ErrRejectedInput)
	assert.Zero(t, fake.calls)
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, "transport", failureKind(&model.TransportError{Err: errors.New("x")}))
	assert.Equal(t, "empty", failureKind(model.ErrEmptyResponse))
	assert.Equal(t, "format", failureKind(&model.FormatError{Reason: "x"}))
	assert.Equal(t, "unknown", failureKind(errors.New("x")))
}
