package cli

import (
	"github.com/joho/godotenv"

	"github.com/AndreyAkinshin/edfdur/internal/errors"
	"github.com/AndreyAkinshin/edfdur/internal/filelist"
	"github.com/AndreyAkinshin/edfdur/internal/output"
)

// loadEnvFiles loads dotenv files in order. Variables already present in the
// environment are kept, so the shell always wins over a file.
func loadEnvFiles(files []string) error {
	for _, f := range files {
		path := filelist.Expand(f)
		if err := godotenv.Load(path); err != nil {
			return errors.Configf("env file %s: %v", f, err)
		}
		out.Debug(output.DebugBrief, "loaded env file %s", path)
	}
	return nil
}
