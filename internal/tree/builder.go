package tree

import (
	"go.uber.org/zap"

	"github.com/spenserblack/fancy-tree/internal/colorize"
	"github.com/spenserblack/fancy-tree/internal/gitstatus"
	"github.com/spenserblack/fancy-tree/internal/language"
	"github.com/spenserblack/fancy-tree/internal/policy"
	"github.com/spenserblack/fancy-tree/internal/sorting"
)

// Builder assembles a Tree from its collaborators.
type Builder struct {
	root         string
	colorChoice  colorize.ColorChoice
	overlay      *gitstatus.Overlay
	chain        *policy.Chain
	sortPolicy   sorting.Policy
	detector     language.Detector
	charset      Charset
	maxLevel     int
	hasMaxLevel  bool
	logger       *zap.Logger
}

// NewBuilder creates a Builder for the given root path and color choice.
func NewBuilder(root string, colorChoice colorize.ColorChoice) *Builder {
	return &Builder{
		root:        root,
		colorChoice: colorChoice,
		sortPolicy:  sorting.DefaultPolicy(),
		charset:     DefaultCharset(),
	}
}

// WithGit attaches a git status overlay.
func (builder *Builder) WithGit(overlay *gitstatus.Overlay) *Builder {
	builder.overlay = overlay
	return builder
}

// WithPolicyChain attaches the skip/icon/color resolution chain.
func (builder *Builder) WithPolicyChain(chain *policy.Chain) *Builder {
	builder.chain = chain
	return builder
}

// WithSortPolicy sets the sibling ordering policy.
func (builder *Builder) WithSortPolicy(sortPolicy sorting.Policy) *Builder {
	builder.sortPolicy = sortPolicy
	return builder
}

// WithDetector attaches the content language detector.
func (builder *Builder) WithDetector(detector language.Detector) *Builder {
	builder.detector = detector
	return builder
}

// WithCharset sets the traversal glyphs.
func (builder *Builder) WithCharset(charset Charset) *Builder {
	builder.charset = charset
	return builder
}

// WithMaxLevel limits traversal to the given depth.
func (builder *Builder) WithMaxLevel(maxLevel int) *Builder {
	builder.maxLevel = maxLevel
	builder.hasMaxLevel = true
	return builder
}

// WithLogger attaches a diagnostics logger.
func (builder *Builder) WithLogger(logger *zap.Logger) *Builder {
	builder.logger = logger
	return builder
}

// Build creates the Tree.
func (builder *Builder) Build() *Tree {
	chain := builder.chain
	if chain == nil {
		chain = policy.NewChain(builder.logger)
	}
	logger := builder.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tree{
		root:         builder.root,
		colorEnabled: builder.colorChoice.Enabled(),
		overlay:      builder.overlay,
		chain:        chain,
		sortPolicy:   builder.sortPolicy,
		detector:     builder.detector,
		charset:      builder.charset,
		maxLevel:     builder.maxLevel,
		hasMaxLevel:  builder.hasMaxLevel,
		logger:       logger,
	}
}
