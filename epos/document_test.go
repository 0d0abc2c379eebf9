package epos

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocument_ModeLegality(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc    string
		mode    Mode
		cmd     Command
		wantErr bool
	}{
		{desc: "text in normal mode", mode: ModeNormal, cmd: &Text{Data: "x\n"}},
		{desc: "text in page mode", mode: ModePage, cmd: &Text{Data: "x\n"}},
		{desc: "feed in normal mode", mode: ModeNormal, cmd: &Feed{}},
		{desc: "feed in page mode", mode: ModePage, cmd: &Feed{}},
		{desc: "barcode in page mode", mode: ModePage, cmd: &Barcode{Data: "0123456", Type: BarcodeEAN8}},
		{desc: "symbol in normal mode", mode: ModeNormal, cmd: &Symbol{Data: "x", Type: SymbolQRCodeModel2}},
		{desc: "image in page mode", mode: ModePage, cmd: &Image{Data: "AA==", Width: 8, Height: 1}},
		{desc: "cut in normal mode", mode: ModeNormal, cmd: &Cut{Type: CutFeed}},
		{desc: "cut in page mode", mode: ModePage, cmd: &Cut{Type: CutFeed}, wantErr: true},
		{desc: "hline in normal mode", mode: ModeNormal, cmd: &Hline{X1: 1, X2: 2}},
		{desc: "hline in page mode", mode: ModePage, cmd: &Hline{X1: 1, X2: 2}, wantErr: true},
		{desc: "area in page mode", mode: ModePage, cmd: &Area{Width: 500, Height: 500}},
		{desc: "area in normal mode", mode: ModeNormal, cmd: &Area{Width: 500, Height: 500}, wantErr: true},
		{desc: "rectangle in normal mode", mode: ModeNormal, cmd: &Rectangle{X2: 10, Y2: 10}, wantErr: true},
		{desc: "line in normal mode", mode: ModeNormal, cmd: &Line{X2: 10, Y2: 10}, wantErr: true},
		{desc: "direction in normal mode", mode: ModeNormal, cmd: &Direction{Dir: DirectionTopToBottom}, wantErr: true},
		{desc: "position in normal mode", mode: ModeNormal, cmd: &Position{X: 1, Y: 1}, wantErr: true},
		{desc: "position in page mode", mode: ModePage, cmd: &Position{X: 1, Y: 1}},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		doc := NewDocument(test.mode)
		err := doc.Add(test.cmd)
		if test.wantErr {
			require.ErrorIs(err, ErrIllegalForMode)
			require.Equal(0, doc.Len())
		} else {
			require.NoError(err)
			require.Equal(1, doc.Len())
		}
	}
}

func TestDocument_AppendOrder(t *testing.T) {
	require := require.New(t)

	doc := NewDocument(ModeNormal)
	require.NoError(doc.Add(&Text{Data: "first\n"}))
	require.NoError(doc.Add(&Hline{X1: 100, X2: 200, Style: LineThinDouble}))
	require.NoError(doc.Add(&Cut{Type: CutFeed}))

	require.Equal([]string{
		"<text>first\n</text>",
		`<hline x1="100" x2="200" style="thin_double"/>`,
		`<cut type="feed"/>`,
	}, doc.Fragments())
}

func TestDocument_InvalidCommandLeavesDocumentUnchanged(t *testing.T) {
	require := require.New(t)

	doc := NewDocument(ModeNormal)
	require.NoError(doc.Add(&Text{Data: "ok\n"}))

	err := doc.Add(&Barcode{Data: "123", Type: BarcodeUPCA})
	require.ErrorIs(err, ErrInvalidPayload)
	require.Equal(1, doc.Len())
}

func TestDocument_FeedPosRejectedInPageMode(t *testing.T) {
	require := require.New(t)

	doc := NewDocument(ModePage)
	err := doc.Add(&Feed{Pos: FeedPosPeeling})
	require.ErrorIs(err, ErrInvalidPayload)
	require.Equal(0, doc.Len())

	// a positionless feed is still fine in page mode
	require.NoError(doc.Add(&Feed{Unit: Uint8(30)}))
}

func TestDocument_FragmentsSnapshot(t *testing.T) {
	require := require.New(t)

	doc := NewDocument(ModeNormal)
	require.NoError(doc.Add(&Text{Data: "a\n"}))

	snapshot := doc.Fragments()
	snapshot[0] = "mutated"

	require.Equal([]string{"<text>a\n</text>"}, doc.Fragments())
}

func TestDocument_SpentAfterTake(t *testing.T) {
	require := require.New(t)

	doc := NewDocument(ModeNormal)
	require.NoError(doc.Add(&Text{Data: "once\n"}))

	fragments, err := doc.Take()
	require.NoError(err)
	require.Equal([]string{"<text>once\n</text>"}, fragments)

	// the document is spent: no resend, no further appends
	_, err = doc.Take()
	require.ErrorIs(err, ErrDocumentSpent)
	require.ErrorIs(doc.Add(&Text{Data: "again\n"}), ErrDocumentSpent)
	require.Equal(0, doc.Len())
}
