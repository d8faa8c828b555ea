package api

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestNormalizeRow(t *testing.T) {
	in := models.Row{"rating": float64(4), "switch_time_seconds": 2.5, "title": "Yard", "featured": true}
	out := NormalizeRow(in)

	assert.Equal(t, int64(4), out["rating"])
	assert.Equal(t, 2.5, out["switch_time_seconds"])
	assert.Equal(t, "Yard", out["title"])
	assert.Equal(t, true, out["featured"])
	assert.Equal(t, float64(4), in["rating"])
	assert.Nil(t, NormalizeRow(nil))
}

func TestRowStruct_WireValues(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	row := models.Row{
		"id":         "p1",
		"rating":     int64(5),
		"featured":   true,
		"created_at": created,
		"sent_at":    (*time.Time)(nil),
		"note":       nil,
		"raw":        []byte("abc"),
	}

	s, err := RowToStruct(row)
	require.NoError(t, err)

	// Survives a real marshal so nothing depends on in-memory sharing.
	data, err := proto.Marshal(s)
	require.NoError(t, err)
	var back structpb.Struct
	require.NoError(t, proto.Unmarshal(data, &back))

	got := RowFromStruct(&back)
	assert.Equal(t, "p1", got.ID())
	assert.Equal(t, int64(5), got["rating"])
	assert.Equal(t, true, got["featured"])
	assert.Equal(t, "abc", got["raw"])
	assert.Nil(t, got["note"])
	assert.Nil(t, got["sent_at"])
	assert.True(t, created.Equal(got.Time("created_at")))

	none, err := RowToStruct(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
	assert.Nil(t, RowFromStruct(nil))
}

func TestViewProto_RoundTrip(t *testing.T) {
	v := collection.View{
		Collection: "projects",
		ID:         "p1",
		Kind:       models.KindProject,
		State:      "dirty",
		Stale:      true,
		Fields:     models.Row{"title": "Yard", "order": int64(2)},
		Media:      []collection.MediaRef{{Slot: "cover", Staged: true, PreviewID: "pv1", FileName: "a.jpg"}},
		Children: []collection.ChildView{
			{ID: "c1", Fields: models.Row{"id": "c1"}, Media: []collection.MediaRef{{Slot: "c1/before", Key: "k1"}}},
			{ID: "new-1", New: true},
		},
	}

	pv, err := ViewToProto(v)
	require.NoError(t, err)
	data, err := proto.Marshal(pv)
	require.NoError(t, err)
	var wire pb.EntityView
	require.NoError(t, proto.Unmarshal(data, &wire))

	got := ViewFromProto(&wire)
	assert.Equal(t, v.Collection, got.Collection)
	assert.Equal(t, v.ID, got.ID)
	assert.Equal(t, models.KindProject, got.Kind)
	assert.Equal(t, "dirty", got.State)
	assert.True(t, got.Stale)
	assert.Equal(t, int64(2), got.Fields["order"])
	assert.Equal(t, v.Media, got.Media)
	require.Len(t, got.Children, 2)
	assert.Equal(t, "k1", got.Children[0].Media[0].Key)
	assert.True(t, got.Children[1].New)
	assert.Nil(t, got.Children[1].Fields)

	assert.Equal(t, collection.View{}, ViewFromProto(nil))
}

func TestNoticeProto_RoundTrip(t *testing.T) {
	n := notify.Notice{
		ID:        "n1",
		Time:      time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Level:     notify.LevelSuccess,
		Kind:      "quote",
		Action:    notify.ActionInsert,
		SubjectID: "q1",
		Title:     "New quote",
		Read:      true,
	}
	got := NoticeFromProto(NoticeToProto(n))
	assert.Equal(t, n, got)

	list := NoticesFromProto([]*pb.Notice{NoticeToProto(n), {Id: "n2"}})
	require.Len(t, list, 2)
	assert.True(t, list[1].Time.IsZero())
}

func TestTestimonialAndFileProto(t *testing.T) {
	tm := models.Testimonial{ID: "t1", Name: "Cy", Text: "Great", Rating: 4, Approved: true, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, tm, TestimonialFromProto(TestimonialToProto(tm)))

	f := File{Slot: "cover", Name: "a.jpg", ContentType: "image/jpeg", Data: []byte{1, 2}}
	assert.Equal(t, f, FileFromProto(FileToProto(f)))
	assert.Nil(t, FilesToProto(nil))
	assert.Len(t, FilesToProto([]File{f, f}), 2)
}

func TestPublicMethods(t *testing.T) {
	assert.True(t, PublicMethods["/landkeeper.admin.AdminService/SignIn"])
	assert.True(t, PublicMethods[pb.AdminService_SubmitQuote_FullMethodName])
	assert.False(t, PublicMethods[pb.AdminService_SaveEntity_FullMethodName])
	assert.False(t, PublicMethods[pb.AdminService_WatchNotices_FullMethodName])
}
