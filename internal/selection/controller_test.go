package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thaqu/internal/catalog"
	"thaqu/internal/contact"
)

type recorder struct{ ids []string }

func (r *recorder) FocusContactWith(id string) { r.ids = append(r.ids, id) }

func lot(id string, s catalog.Status) catalog.Lot {
	return catalog.Lot{ID: id, Name: "Lote " + id, AreaSquareMeters: 5096, PriceCLP: 25000000, Status: s}
}

func TestStartsClosed(t *testing.T) {
	c := New(nil)
	s := c.State()
	assert.True(t, s.Closed())
	assert.Equal(t, ActiveNone, s.Active())
	assert.Nil(t, c.Viewport())
}

func TestSelectLotOpensDetail(t *testing.T) {
	c := New(nil)
	c.SelectLot(lot("A1-1", catalog.StatusAvailable))
	s := c.State()
	assert.True(t, s.DetailOpen)
	require.NotNil(t, s.Lot)
	assert.Equal(t, "A1-1", s.Lot.ID)
	assert.Equal(t, ViewerNone, s.Viewer)
	assert.Equal(t, ActiveLotDetail, s.Active())
}

func TestFullRoundTripReturnsToClosed(t *testing.T) {
	c := New(nil)
	c.SelectLot(lot("A1-1", catalog.StatusAvailable))
	c.OpenViewer(ViewerPlan)
	assert.Equal(t, ActiveImagePlan, c.State().Active())
	require.NotNil(t, c.State().ViewerLot)
	assert.Equal(t, "A1-1", c.State().ViewerLot.ID)

	c.CloseViewer()
	assert.Equal(t, ActiveLotDetail, c.State().Active())
	c.CloseDetail()

	s := c.State()
	assert.True(t, s.Closed())
	assert.Nil(t, s.Lot)
	assert.Nil(t, s.ViewerLot)
	_, ok := c.Lot()
	assert.False(t, ok)
}

func TestViewerGetsFreshViewport(t *testing.T) {
	c := New(nil)
	c.OpenViewer(ViewerSatellite)
	vp := c.Viewport()
	require.NotNil(t, vp)
	vp.ZoomIn()
	vp.BeginDrag(0, 0)
	vp.OnDrag(4, 4)

	c.CloseViewer()
	assert.Nil(t, c.Viewport())

	c.OpenViewer(ViewerPlan)
	require.NotNil(t, c.Viewport())
	assert.NotSame(t, vp, c.Viewport())
	assert.Equal(t, 1.0, c.Viewport().Zoom())
	assert.Zero(t, c.Viewport().Pan())
}

func TestThumbnailOpensViewerWithoutSelecting(t *testing.T) {
	c := New(nil)
	c.OpenThumbnail(lot("A2-1", catalog.StatusAvailable))
	s := c.State()
	assert.False(t, s.DetailOpen)
	assert.Nil(t, s.Lot)
	assert.Equal(t, ViewerPlan, s.Viewer)
	require.NotNil(t, s.ViewerLot)
	assert.Equal(t, "A2-1", s.ViewerLot.ID)
}

func TestCloseDetailLeavesViewer(t *testing.T) {
	c := New(nil)
	c.SelectLot(lot("A1-1", catalog.StatusAvailable))
	c.OpenViewer(ViewerPlan)
	c.CloseDetail()
	s := c.State()
	assert.False(t, s.DetailOpen)
	assert.Equal(t, ViewerPlan, s.Viewer)
	assert.NotNil(t, c.Viewport())
}

func TestQuoteOnAvailableLot(t *testing.T) {
	r := &recorder{}
	c := New(r)
	c.SelectLot(lot("A1-2", catalog.StatusAvailable))
	require.NoError(t, c.QuoteAllowed())

	got, err := c.RequestQuote()
	require.NoError(t, err)
	assert.Equal(t, "A1-2", got.ID)
	assert.Equal(t, []string{"A1-2"}, r.ids)
	assert.True(t, c.State().Closed())

	// a second request has nothing to quote
	_, err = c.RequestQuote()
	assert.ErrorIs(t, err, ErrNoLotSelected)
	assert.Len(t, r.ids, 1)
}

func TestQuoteRefusedForUnavailableLots(t *testing.T) {
	for _, st := range []catalog.Status{catalog.StatusSold, catalog.StatusReserved} {
		t.Run(st.String(), func(t *testing.T) {
			r := &recorder{}
			c := New(r)
			c.SelectLot(lot("B1-1", st))
			before := c.State()

			_, err := c.RequestQuote()
			assert.ErrorIs(t, err, ErrLotUnavailable)
			assert.ErrorContains(t, err, st.String())
			assert.Equal(t, before, c.State())
			assert.Empty(t, r.ids)
		})
	}
}

func TestQuoteWithoutBridgeIsSilent(t *testing.T) {
	c := New(nil)
	c.SelectLot(lot("A1-1", catalog.StatusAvailable))
	_, err := c.RequestQuote()
	require.NoError(t, err)
	assert.True(t, c.State().Closed())
}

func TestQuoteThroughBridgeFunc(t *testing.T) {
	calls := 0
	c := New(contact.BridgeFunc(func(string) { calls++ }))
	c.SelectLot(lot("A1-1", catalog.StatusAvailable))
	_, err := c.RequestQuote()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSelectedLotIsACopy(t *testing.T) {
	c := New(nil)
	l := lot("A1-1", catalog.StatusAvailable)
	c.SelectLot(l)
	l.Name = "changed"
	got, ok := c.Lot()
	require.True(t, ok)
	assert.Equal(t, "Lote A1-1", got.Name)
}
