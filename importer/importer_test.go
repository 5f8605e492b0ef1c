package importer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/guidebook/guide"
)

const walkthroughPage = `<!DOCTYPE html>
<html>
<head><title>Dark Souls III Any% Walkthrough</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<article>
<h1>Dark Souls III Any% Walkthrough</h1>
<p>This route clears the game without upgrades and is aimed at runners who
already know the basic movement. Expect roughly ninety minutes for a clean
first attempt through the early areas.</p>
<p>Start as a Knight for the extra survivability. The early route goes
through the Cemetery of Ash, the High Wall of Lothric and the Undead
Settlement before the first major skip.</p>
<p>Every section below lists the items worth grabbing along the way and
the bosses you cannot avoid on this category.</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

func TestConverter_Convert(t *testing.T) {
	c := NewConverter()

	skeleton, err := c.Convert([]byte(walkthroughPage), "https://example.com/ds3-walkthrough")
	require.NoError(t, err)

	assert.Equal(t, "darksouls3", skeleton.Schema)
	assert.Equal(t, "Dark Souls III Any% Walkthrough", skeleton.GameTitle)
	assert.NotEmpty(t, skeleton.Description)
	assert.Equal(t, []string{"https://example.com/ds3-walkthrough"}, skeleton.Resources)
	assert.Empty(t, skeleton.Instructions)

	// Conversion keeps the prose content and drops the chrome.
	all := strings.Join(skeleton.Description, "\n\n")
	assert.Contains(t, all, "Knight")
	assert.NotContains(t, all, "Copyright")
}

func TestConverter_ConvertWithoutURL(t *testing.T) {
	c := NewConverter()

	skeleton, err := c.Convert([]byte(walkthroughPage), "")
	require.NoError(t, err)

	assert.Empty(t, skeleton.Resources)
	assert.NotEmpty(t, skeleton.Description)
}

// The produced skeleton must itself be a parseable guide document.
func TestSkeleton_JSONRoundTrip(t *testing.T) {
	c := NewConverter()

	skeleton, err := c.Convert([]byte(walkthroughPage), "https://example.com/guide")
	require.NoError(t, err)

	data, err := skeleton.JSON()
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	g, err := guide.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, skeleton.GameTitle, g.GameTitle)
	assert.Empty(t, g.Instructions)
}
