package service

import (
	"context"
	"strings"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// assistantVoice is the voice description used for spoken replies.
const assistantVoice = "A helpful and friendly AI assistant."

// OmniChat answers a typed or spoken turn with a spoken reply. Speech is
// transcribed first and appended to the typed text; the reply is then
// generated by the chat model and voiced by the design model. Each stage
// makes its own checkpoint resident, so a turn may swap models three times.
func (s *Service) OmniChat(ctx context.Context, in types.OmniChatInput) (types.OmniChatResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" && len(in.Audio) == 0 {
		return types.OmniChatResponse{}, errInvalid("either text or audio must be provided")
	}

	var resp types.OmniChatResponse
	if len(in.Audio) > 0 {
		tr, err := s.transcribe(ctx, types.TranscribeInput{Audio: in.Audio, AudioName: in.AudioName})
		if err != nil {
			return types.OmniChatResponse{}, err
		}
		resp.Transcript = strings.TrimSpace(tr.Text)
		text = strings.TrimSpace(text + " " + resp.Transcript)
		s.log.Debug().Str("transcript", resp.Transcript).Msg("omni transcribed")
	}
	if text == "" {
		return types.OmniChatResponse{}, errInvalid("could not extract text from audio")
	}

	reply, err := s.chat(ctx, s.models.Chat, types.ChatInput{
		Messages:    []types.ChatTurn{{Role: "user", Text: []string{text}}},
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	})
	if err != nil {
		return types.OmniChatResponse{}, err
	}
	resp.Text = reply.Text
	if strings.TrimSpace(reply.Text) == "" {
		return resp, nil
	}

	audio, err := s.DesignVoice(ctx, types.VoiceDesignInput{
		Text:     reply.Text,
		Instruct: assistantVoice,
		Language: in.Language,
	})
	if err != nil {
		return types.OmniChatResponse{}, err
	}
	resp.Audio = audio.Data
	resp.MediaType = audio.ContentType
	return resp, nil
}

func (s *Service) transcribe(ctx context.Context, in types.TranscribeInput) (types.Transcript, error) {
	var out types.Transcript
	err := s.mgr.Do(ctx, s.models.STT, s.mgr.Settings(), func(h manager.Handle) error {
		tr, err := manager.AsTranscriber(h)
		if err != nil {
			return err
		}
		out, err = tr.Transcribe(ctx, in)
		return err
	})
	return out, err
}
