package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// PostShader applies the vignette and grain pass on flagged views
	PostShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	postSrc, err := shaderFS.ReadFile("shaders/post.kage")
	if err != nil {
		return err
	}
	PostShader, err = ebiten.NewShader(postSrc)
	if err != nil {
		return err
	}

	return nil
}
