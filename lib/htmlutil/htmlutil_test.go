package htmlutil

import (
	"context"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/require"
)

const sample = `<html><body>
<div class="row">
	<span class="kills"> 7 </span>
	<span class="deaths">300</span>
	<span class="assists">x</span>
	<img alt="Kai'Sa" src="a.png">
	<img alt="Ashe">
	<p class="name">  Miss
	   Fortune  </p>
</div>
</body></html>`

func TestFirstUint8(t *testing.T) {
	doc, err := ParseString(context.Background(), sample)
	require.NoError(t, err)
	root := doc.Selection

	kills, ok := FirstUint8(Select(root, cascadia.MustCompile("span.kills")))
	require.True(t, ok)
	require.Equal(t, uint8(7), kills)

	_, ok = FirstUint8(Select(root, cascadia.MustCompile("span.deaths")))
	require.False(t, ok, "values over 255 must not be clamped")

	_, ok = FirstUint8(Select(root, cascadia.MustCompile("span.assists")))
	require.False(t, ok)

	_, ok = FirstUint8(Select(root, cascadia.MustCompile("span.missing")))
	require.False(t, ok)
}

func TestFirstText(t *testing.T) {
	doc, err := ParseString(context.Background(), sample)
	require.NoError(t, err)

	name, ok := FirstText(Select(doc.Selection, cascadia.MustCompile("p.name")))
	require.True(t, ok)
	require.Equal(t, "Miss Fortune", name)

	_, ok = FirstText(Select(doc.Selection, cascadia.MustCompile(".gameDuration")))
	require.False(t, ok)
}

func TestFirstAttrAndNth(t *testing.T) {
	doc, err := ParseString(context.Background(), sample)
	require.NoError(t, err)

	imgs := Select(doc.Selection, cascadia.MustCompile("img"))
	require.Equal(t, 2, imgs.Length())

	alt, ok := FirstAttr(imgs, "alt")
	require.True(t, ok)
	require.Equal(t, "Kai'Sa", alt)

	second, ok := Nth(imgs, 1)
	require.True(t, ok)
	_, ok = FirstAttr(second, "src")
	require.False(t, ok)

	_, ok = Nth(imgs, 2)
	require.False(t, ok)
	_, ok = FirstAttr(Select(doc.Selection, cascadia.MustCompile("video")), "alt")
	require.False(t, ok)
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "32:10", CleanText("\n\t 32:10 \u200b"))
	require.Equal(t, "a b", CleanText("a \n\n b"))
}
