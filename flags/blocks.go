package flags

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/clockface-io/clockface/config"
)

// Block is a displayable column of the output.
type Block int8

const (
	BlockPermission Block = iota
	BlockUser
	BlockGroup
	BlockContext
	BlockSize
	BlockDate
	BlockName
	BlockINode
	BlockLinks
)

var blockNames = map[string]Block{
	"permission": BlockPermission,
	"user":       BlockUser,
	"group":      BlockGroup,
	"context":    BlockContext,
	"size":       BlockSize,
	"date":       BlockDate,
	"name":       BlockName,
	"inode":      BlockINode,
	"links":      BlockLinks,
}

// ParseBlock parses a block name.
func ParseBlock(value string) (Block, error) {
	if b, ok := blockNames[value]; ok {
		return b, nil
	}
	return BlockName, fmt.Errorf("invalid block name: %q", value)
}

func (b Block) String() string {
	for name, v := range blockNames {
		if v == b {
			return name
		}
	}
	return "name"
}

// Blocks is the ordered list of columns to display.
type Blocks []Block

func defaultBlocks() Blocks { return Blocks{BlockName} }

func longBlocks() Blocks {
	return Blocks{BlockPermission, BlockUser, BlockGroup,
		BlockSize, BlockDate, BlockName}
}

// DisplaysSize reports whether the size column is displayed.
func (bs Blocks) DisplaysSize() bool {
	for _, b := range bs {
		if b == BlockSize {
			return true
		}
	}
	return false
}

// EnsureINode prepends the inode column unless already present.
func (bs Blocks) EnsureINode() Blocks {
	for _, b := range bs {
		if b == BlockINode {
			return bs
		}
	}
	return append(Blocks{BlockINode}, bs...)
}

// InsertContext inserts the security context column after the group
// column, unless already present. Falls back to after user, then to
// the front, approximating where coreutils ls places the context.
func (bs Blocks) InsertContext() Blocks {
	for _, b := range bs {
		if b == BlockContext {
			return bs
		}
	}
	at := 0
	for i, b := range bs {
		if b == BlockGroup {
			at = i + 1
			break
		}
		if b == BlockUser {
			at = i + 1
		}
	}
	out := make(Blocks, 0, len(bs)+1)
	out = append(out, bs[:at]...)
	out = append(out, BlockContext)
	return append(out, bs[at:]...)
}

func parseBlocks(value string) (Blocks, error) {
	var bs Blocks
	for _, name := range strings.Split(value, ",") {
		b, err := ParseBlock(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		bs = append(bs, b)
	}
	return bs, nil
}

func configureBlocks(fs *pflag.FlagSet, cfg *config.Config) (Blocks, error) {
	def := defaultBlocks()
	if boolFlag(fs, "long") {
		def = longBlocks()
	}
	bs, err := resolve(def,
		blocksFromFlags(fs),
		blocksFromConfig(cfg),
	)
	if err != nil {
		return nil, err
	}
	if boolFlag(fs, "context") {
		bs = bs.InsertContext()
	}
	if boolFlag(fs, "inode") {
		bs = bs.EnsureINode()
	}
	return bs, nil
}

func blocksFromFlags(fs *pflag.FlagSet) lookup[Blocks] {
	return func() (Blocks, bool, error) {
		value, ok := stringFlag(fs, "blocks")
		if !ok || value == "" {
			return nil, false, nil
		}
		bs, err := parseBlocks(value)
		if err != nil {
			return nil, false, err
		}
		return bs, true, nil
	}
}

func blocksFromConfig(cfg *config.Config) lookup[Blocks] {
	return func() (Blocks, bool, error) {
		if len(cfg.Blocks) == 0 {
			return nil, false, nil
		}
		var bs Blocks
		for _, name := range cfg.Blocks {
			b, err := ParseBlock(strings.TrimSpace(name))
			if err != nil {
				log.Warn().Err(err).Msg("ignoring config value")
				continue
			}
			bs = append(bs, b)
		}
		if len(bs) == 0 {
			return nil, false, nil
		}
		return bs, true, nil
	}
}
