package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	errUtils "github.com/cargoship-ci/cargoship/errors"
	"github.com/cargoship-ci/cargoship/pkg/ci"
	"github.com/cargoship-ci/cargoship/pkg/git"
	log "github.com/cargoship-ci/cargoship/pkg/logger"
	"github.com/cargoship-ci/cargoship/pkg/resolver"
	"github.com/cargoship-ci/cargoship/pkg/schema"
)

// dateFlagFormat is the accepted layout for the --date flag.
const dateFlagFormat = "2006-01-02"

type resolveFlags struct {
	workflowType string
	repository   string
	prNumber     int
	releaseTag   string
	commitSHA    string
	runNumber    int
	date         string
	imageSuffix  string
	format       string
	ciOutput     bool
}

var resolveOpts resolveFlags

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve build and version metadata for the current workflow run",
	Long: `Resolve derives a semantic version, tag name, image tag, image repository
and short commit SHA from the workflow context.

Inputs are gathered from the detected CI provider (falling back to the local
git repository) and can be overridden with flags. When running under CI the
resolved values are also published as step outputs and a job summary.`,
	Example: `  cargoship resolve
  cargoship resolve --type release --release-tag v0.2.0 --repository owner/app --commit-sha a1b2c3d4e5f6
  cargoship resolve --format json --ci-output=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeResolve(&cliConfig, &resolveOpts)
	},
}

// executeResolve gathers the workflow context, resolves it, prints the
// result, and publishes CI outputs.
func executeResolve(cfg *schema.Configuration, opts *resolveFlags) error {
	wctx, writer, err := gatherContext(cfg, opts)
	if err != nil {
		return err
	}

	info, err := resolver.Resolve(wctx)
	if err != nil {
		return errUtils.Build(err).
			WithHint("Supply the missing value with a flag, e.g. --pr-number or --release-tag").
			WithContext("type", wctx.WorkflowType.String()).
			Err()
	}

	if _, err := info.Semver(); err != nil {
		log.Debug("Resolved version is not a semantic version", "version", info.Version)
	}

	if err := printVersionInfo(cfg, info, opts.format); err != nil {
		return err
	}

	if writer != nil && opts.ciOutput && cfg.CI.Outputs {
		helpers := ci.NewOutputHelpers(writer)
		if err := helpers.WriteVersionOutputs(info); err != nil {
			return err
		}
		if err := helpers.WriteVersionSummary(info); err != nil {
			return err
		}
		log.Debug("Published CI step outputs")
	}

	return nil
}

// gatherContext builds the resolver input from the CI provider (or local
// git repository) and applies flag overrides.
func gatherContext(cfg *schema.Configuration, opts *resolveFlags) (resolver.WorkflowContext, ci.OutputWriter, error) {
	wctx := resolver.WorkflowContext{
		Date:        time.Now().UTC(),
		ImageSuffix: cfg.Image.Suffix,
	}
	inferredType := "main"

	var writer ci.OutputWriter

	provider, err := selectProvider(cfg)
	if err != nil {
		return wctx, nil, err
	}

	if provider != nil {
		cctx, err := provider.Context()
		if err != nil {
			return wctx, nil, err
		}

		wctx.Repository = cctx.Repository
		wctx.CommitSHA = cctx.SHA
		wctx.RunNumber = cctx.RunNumber
		wctx.ReleaseTag = cctx.ReleaseTag
		if cctx.PullRequest != nil {
			wctx.PRNumber = cctx.PullRequest.Number
		}
		inferredType = cctx.InferWorkflowType()
		writer = provider.OutputWriter()

		log.Debug("Using CI context", "provider", provider.Name(), "event", cctx.EventName, "ref", cctx.Ref)
	} else {
		// Not in CI: fall back to the local git repository.
		if repo, err := git.GetLocalRepo(); err == nil {
			if repoInfo, err := git.GetRepoInfo(repo); err == nil {
				wctx.Repository = repoInfo.Repository()
				wctx.CommitSHA = repoInfo.HeadSHA
				log.Debug("Using local git context", "repository", wctx.Repository, "sha", wctx.CommitSHA)
			}
		}
	}

	applyOverrides(&wctx, opts)

	typeName := opts.workflowType
	if typeName == "" {
		typeName = inferredType
	}
	wctx.WorkflowType, err = resolver.ParseWorkflowType(typeName)
	if err != nil {
		return wctx, nil, err
	}

	return wctx, writer, nil
}

// selectProvider returns the configured provider, the detected one, or nil
// when not running under CI.
func selectProvider(cfg *schema.Configuration) (ci.Provider, error) {
	if cfg.CI.Provider != "" {
		return ci.Get(cfg.CI.Provider)
	}
	return ci.Detect(), nil
}

// applyOverrides applies non-empty flag values on top of the gathered context.
func applyOverrides(wctx *resolver.WorkflowContext, opts *resolveFlags) {
	if opts.repository != "" {
		wctx.Repository = opts.repository
	}
	if opts.commitSHA != "" {
		wctx.CommitSHA = opts.commitSHA
	}
	if opts.prNumber > 0 {
		wctx.PRNumber = opts.prNumber
	}
	if opts.releaseTag != "" {
		wctx.ReleaseTag = opts.releaseTag
	}
	if opts.runNumber > 0 {
		wctx.RunNumber = opts.runNumber
	}
	if opts.imageSuffix != "" {
		wctx.ImageSuffix = opts.imageSuffix
	}
	if opts.date != "" {
		if parsed, err := time.Parse(dateFlagFormat, opts.date); err == nil {
			wctx.Date = parsed.UTC()
		} else {
			log.Warn("Ignoring invalid --date value", "date", opts.date, "expected", dateFlagFormat)
		}
	}
}

// printVersionInfo renders the resolved metadata as text or JSON on stdout.
func printVersionInfo(cfg *schema.Configuration, info *resolver.VersionInfo, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "", "text":
		fmt.Printf("version:          %s\n", info.Version)
		fmt.Printf("tag_name:         %s\n", info.TagName)
		fmt.Printf("image_tag:        %s\n", info.ImageTag)
		fmt.Printf("image_repository: %s\n", info.ImageRepository)
		fmt.Printf("short_sha:        %s\n", info.ShortSHA)
		if cfg.Image.Registry != "" {
			fmt.Printf("image_ref:        %s/%s:%s\n", cfg.Image.Registry, info.ImageRepository, info.ImageTag)
		}
	default:
		return fmt.Errorf("%w: --format must be 'text' or 'json', got %q", errUtils.ErrInvalidFlag, format)
	}
	return nil
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOpts.workflowType, "type", "t", "", "Workflow type: main, pull-request, or release (default: inferred from CI context)")
	resolveCmd.Flags().StringVar(&resolveOpts.repository, "repository", "", "Repository in owner/name form")
	resolveCmd.Flags().IntVar(&resolveOpts.prNumber, "pr-number", 0, "Pull request number (pull-request builds)")
	resolveCmd.Flags().StringVar(&resolveOpts.releaseTag, "release-tag", "", "Release tag, e.g. v0.2.0 (release builds)")
	resolveCmd.Flags().StringVar(&resolveOpts.commitSHA, "commit-sha", "", "Full commit SHA")
	resolveCmd.Flags().IntVar(&resolveOpts.runNumber, "run-number", 0, "CI run number (main builds)")
	resolveCmd.Flags().StringVar(&resolveOpts.date, "date", "", "Evaluation date in YYYY-MM-DD form (default: today, UTC)")
	resolveCmd.Flags().StringVar(&resolveOpts.imageSuffix, "image-suffix", "", "Suffix appended to the image repository name")
	resolveCmd.Flags().StringVarP(&resolveOpts.format, "format", "f", "text", "Output format: text or json")
	resolveCmd.Flags().BoolVar(&resolveOpts.ciOutput, "ci-output", true, "Publish step outputs when running under CI")
	RootCmd.AddCommand(resolveCmd)
}
