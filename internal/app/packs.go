package app

import (
	"github.com/vk/blockforge/blocks/arithmetic"
	"github.com/vk/blockforge/blocks/speech"
	"github.com/vk/blockforge/internal/handlers"
)

// corePacks is the definitive list of block packages that are compiled into
// the blockforge binary.
var corePacks = []handlers.Pack{
	&arithmetic.Pack{},
	&speech.Pack{},
}
