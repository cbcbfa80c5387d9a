package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trkbt10/pageflow"
	"github.com/trkbt10/pageflow/internal/logger"
	"github.com/trkbt10/pageflow/layout"
	"github.com/trkbt10/pageflow/model"
	"github.com/trkbt10/pageflow/segment"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [runs-file]",
	Short: "Group a page's text runs into ordered blocks",
	Long: `Read a page of positioned text runs from a JSON file and write the
grouped blocks to stdout as JSON.

The input file holds the runs and, optionally, the page dimensions and
blocking zones:

  {
    "page": {"width": 612, "height": 792, "blocking_zones": []},
    "runs": [
      {"text": "Hello ", "x": 72, "y": 700, "width": 30,
       "height": 12, "font_name": "Helvetica", "font_size": 10}
    ]
  }`,
	Example: `  # Group runs into blocks
  pageflow analyze page.json

  # Apply config overrides and run the contextual pass
  pageflow analyze page.json --config pageflow.yaml --contextual`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("config", "c", "", "YAML config file with layout/segment overrides")
	analyzeCmd.Flags().Bool("contextual", false, "Coalesce blocks with the contextual pass")
	analyzeCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("analyze")

	configPath, _ := cmd.Flags().GetString("config")
	contextual, _ := cmd.Flags().GetBool("contextual")
	outputPath, _ := cmd.Flags().GetString("output")

	layoutCfg := layout.DefaultConfig()
	segmentCfg := segment.DefaultBlockConfig()
	if configPath != "" {
		if err := loadConfig(configPath, &layoutCfg, &segmentCfg); err != nil {
			return fmt.Errorf("load config %s: %w", configPath, err)
		}
	}

	page, err := loadPage(args[0])
	if err != nil {
		return fmt.Errorf("load runs %s: %w", args[0], err)
	}

	log.Info().
		Str("file", args[0]).
		Int("runs", len(page.runs)).
		Bool("contextual", contextual).
		Msg("Analyzing page")

	blocks, err := pageflow.AnalyzeWithConfig(page.runs, page.context, layoutCfg)
	if err != nil {
		return err
	}

	out := analyzeOutput{Blocks: make([]blockOutput, len(blocks))}
	for i, b := range blocks {
		out.Blocks[i] = toBlockOutput(b)
	}

	if contextual {
		result, err := pageflow.SegmentBlocks(blocks, segmentCfg)
		if err != nil {
			return err
		}
		out.Segments = make([]segmentOutput, len(result.Segments))
		for i, seg := range result.Segments {
			out.Segments[i] = segmentOutput{
				Text:       seg.Text,
				Bounds:     toRectOutput(segment.SegmentBounds(seg)),
				BlockCount: len(seg.Units),
			}
		}
		log.Info().
			Int("blocks", len(blocks)).
			Int("segments", len(result.Segments)).
			Float64("threshold", result.Threshold).
			Msg("Contextual pass complete")
	} else {
		log.Info().Int("blocks", len(blocks)).Msg("Analysis complete")
	}

	return writeOutput(out, outputPath)
}

type pageInput struct {
	runs    []model.TextRun
	context *model.PageContext
}

type runInput struct {
	Text              string  `json:"text"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	FontName          string  `json:"font_name"`
	FontSize          float64 `json:"font_size"`
	CharSpacing       float64 `json:"char_spacing"`
	WordSpacing       float64 `json:"word_spacing"`
	HorizontalScaling float64 `json:"horizontal_scaling"`
	FillColor         string  `json:"fill_color"`
}

type rectInput struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type fileInput struct {
	Page *struct {
		Width         float64     `json:"width"`
		Height        float64     `json:"height"`
		BlockingZones []rectInput `json:"blocking_zones"`
	} `json:"page"`
	Runs []runInput `json:"runs"`
}

func loadPage(path string) (pageInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pageInput{}, err
	}

	var in fileInput
	if err := json.Unmarshal(data, &in); err != nil {
		return pageInput{}, err
	}

	page := pageInput{runs: make([]model.TextRun, len(in.Runs))}
	for i, r := range in.Runs {
		page.runs[i] = model.TextRun{
			Text:              r.Text,
			X:                 r.X,
			Y:                 r.Y,
			Width:             r.Width,
			Height:            r.Height,
			FontName:          r.FontName,
			FontSize:          r.FontSize,
			CharSpacing:       r.CharSpacing,
			WordSpacing:       r.WordSpacing,
			HorizontalScaling: r.HorizontalScaling,
			FillColor:         r.FillColor,
		}
	}

	if in.Page != nil {
		ctx := &model.PageContext{
			PageWidth:  in.Page.Width,
			PageHeight: in.Page.Height,
		}
		for _, z := range in.Page.BlockingZones {
			ctx.BlockingZones = append(ctx.BlockingZones, model.BlockingZone{
				X: z.X, Y: z.Y, Width: z.Width, Height: z.Height,
			})
		}
		page.context = ctx
	}

	return page, nil
}

type rectOutput struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type paragraphOutput struct {
	Text     string     `json:"text"`
	Bounds   rectOutput `json:"bounds"`
	Baseline float64    `json:"baseline"`
}

type blockOutput struct {
	Text       string            `json:"text"`
	Bounds     rectOutput        `json:"bounds"`
	Direction  string            `json:"direction,omitempty"`
	Alignment  string            `json:"alignment,omitempty"`
	Confidence float64           `json:"confidence,omitempty"`
	Paragraphs []paragraphOutput `json:"paragraphs"`
}

type segmentOutput struct {
	Text       string     `json:"text"`
	Bounds     rectOutput `json:"bounds"`
	BlockCount int        `json:"block_count"`
}

type analyzeOutput struct {
	Blocks   []blockOutput   `json:"blocks"`
	Segments []segmentOutput `json:"segments,omitempty"`
}

func toRectOutput(r model.Rect) rectOutput {
	return rectOutput{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func toBlockOutput(b layout.Block) blockOutput {
	out := blockOutput{
		Text:       b.Text(),
		Bounds:     toRectOutput(b.Bounds),
		Paragraphs: make([]paragraphOutput, len(b.Paragraphs)),
	}
	if b.Inference != nil {
		out.Direction = b.Inference.Direction.String()
		out.Alignment = b.Inference.Alignment.String()
		out.Confidence = b.Inference.Confidence
	}
	for i, p := range b.Paragraphs {
		out.Paragraphs[i] = paragraphOutput{
			Text:     p.Text(),
			Bounds:   toRectOutput(p.Bounds()),
			Baseline: p.BaselineY,
		}
	}
	return out
}

func writeOutput(out analyzeOutput, path string) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
