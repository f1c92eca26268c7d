package speech

import (
	"context"
	"os"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// GoogleEngine speaks through the Google Cloud Text-to-Speech API.
type GoogleEngine struct {
	client *texttospeech.Client
}

// NewGoogleEngine uses credentialsFile when set, application default credentials otherwise.
func NewGoogleEngine(ctx context.Context, credentialsFile string) (*GoogleEngine, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create text-to-speech client")
	}
	return &GoogleEngine{client: client}, nil
}

func (e *GoogleEngine) Synthesize(ctx context.Context, text, languageCode, outPath string) error {
	req := texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := e.client.SynthesizeSpeech(ctx, &req)
	if err != nil {
		return errors.Wrap(err, "could not generate audio")
	}

	if err := os.WriteFile(outPath, resp.AudioContent, 0644); err != nil {
		return errors.Wrapf(err, "could not write %s", outPath)
	}
	return nil
}

func (e *GoogleEngine) Close() error {
	return e.client.Close()
}
