package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maastricht-university/gesture-pipeline/audio"
	"github.com/maastricht-university/gesture-pipeline/clients"
	cfg "github.com/maastricht-university/gesture-pipeline/config"
	"github.com/maastricht-university/gesture-pipeline/microphone"
	"github.com/maastricht-university/gesture-pipeline/orchestrator"
)

func newTranslateCmd(a *app) *cobra.Command {
	var req orchestrator.Request
	c := &cobra.Command{
		Use:   "translate",
		Short: "Record speech, transcribe it and translate the transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := a.conf
			if conf.Services.Speech.APIKey == "" {
				a.log.Warn("no speech API key configured, set SARVAM_API_KEY")
			}

			out := cmd.OutOrStdout()
			prompt := orchestrator.NewPrompter(cmd.InOrStdin(), out)
			if !cmd.Flags().Changed("duration") {
				req.Duration = prompt.Duration()
			}
			if !cmd.Flags().Changed("target") {
				req.TargetLanguage = prompt.Target()
			}

			rec := &audio.Recorder{
				Open:       microphone.Open,
				Dir:        conf.Audio.TempDir,
				Name:       conf.Audio.TempName,
				SampleRate: conf.Audio.SampleRate,
				ChunkSize:  conf.Audio.ChunkSize,
				Log:        a.log,
			}
			h := clients.NewHTTP(cfg.DurSeconds(conf.HTTP.Timeout), conf.Services.Speech.APIKey, a.log)
			p := orchestrator.NewPipeline(conf, rec, h, out, a.log)

			_, err := p.Run(cmd.Context(), req)
			return err
		},
	}
	c.Flags().IntVar(&req.Duration, "duration", orchestrator.DefaultDuration, "recording length in seconds")
	c.Flags().StringVar(&req.TargetLanguage, "target", orchestrator.DefaultTarget, "target language code")
	return c
}
