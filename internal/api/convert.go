package api

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	pb "github.com/dmitrijs2005/landkeeper/internal/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// NormalizeRow turns whole numbers back into integers so they bind to
// integer columns. Struct values carry every number as a double.
func NormalizeRow(r models.Row) models.Row {
	if r == nil {
		return nil
	}
	out := make(models.Row, len(r))
	for k, v := range r {
		if f, ok := v.(float64); ok && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			out[k] = int64(f)
			continue
		}
		out[k] = v
	}
	return out
}

// wireValue reduces a row value to something structpb accepts. Times
// travel as RFC 3339 text, which models.AsTime parses back.
func wireValue(v any) any {
	switch t := v.(type) {
	case nil, bool, string, int, int32, int64, float32, float64:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return models.AsString(v)
	}
}

// RowToStruct encodes a row for the wire.
func RowToStruct(r models.Row) (*structpb.Struct, error) {
	if r == nil {
		return nil, nil
	}
	m := make(map[string]any, len(r))
	for k, v := range r {
		m[k] = wireValue(v)
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	return s, nil
}

// RowFromStruct decodes a wire row; a nil struct yields a nil row.
func RowFromStruct(s *structpb.Struct) models.Row {
	if s == nil {
		return nil
	}
	return NormalizeRow(s.AsMap())
}

func mediaToProto(in []collection.MediaRef) []*pb.MediaRef {
	if len(in) == 0 {
		return nil
	}
	out := make([]*pb.MediaRef, 0, len(in))
	for _, m := range in {
		out = append(out, &pb.MediaRef{Slot: m.Slot, Key: m.Key, Staged: m.Staged, PreviewId: m.PreviewID, FileName: m.FileName})
	}
	return out
}

func mediaFromProto(in []*pb.MediaRef) []collection.MediaRef {
	if len(in) == 0 {
		return nil
	}
	out := make([]collection.MediaRef, 0, len(in))
	for _, m := range in {
		out = append(out, collection.MediaRef{
			Slot:      m.GetSlot(),
			Key:       m.GetKey(),
			Staged:    m.GetStaged(),
			PreviewID: m.GetPreviewId(),
			FileName:  m.GetFileName(),
		})
	}
	return out
}

// ViewToProto encodes an entity snapshot.
func ViewToProto(v collection.View) (*pb.EntityView, error) {
	fields, err := RowToStruct(v.Fields)
	if err != nil {
		return nil, err
	}
	out := &pb.EntityView{
		Collection: v.Collection,
		Id:         v.ID,
		Kind:       string(v.Kind),
		State:      v.State,
		Stale:      v.Stale,
		Fields:     fields,
		Media:      mediaToProto(v.Media),
	}
	for _, c := range v.Children {
		cf, err := RowToStruct(c.Fields)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, &pb.ChildView{Id: c.ID, New: c.New, Fields: cf, Media: mediaToProto(c.Media)})
	}
	return out, nil
}

func ViewFromProto(v *pb.EntityView) collection.View {
	if v == nil {
		return collection.View{}
	}
	out := collection.View{
		Collection: v.GetCollection(),
		ID:         v.GetId(),
		Kind:       models.Kind(v.GetKind()),
		State:      v.GetState(),
		Stale:      v.GetStale(),
		Fields:     RowFromStruct(v.GetFields()),
		Media:      mediaFromProto(v.GetMedia()),
	}
	for _, c := range v.GetChildren() {
		out.Children = append(out.Children, collection.ChildView{
			ID:     c.GetId(),
			New:    c.GetNew(),
			Fields: RowFromStruct(c.GetFields()),
			Media:  mediaFromProto(c.GetMedia()),
		})
	}
	return out
}

func ViewsToProto(in []collection.View) ([]*pb.EntityView, error) {
	out := make([]*pb.EntityView, 0, len(in))
	for _, v := range in {
		pv, err := ViewToProto(v)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}

func ViewsFromProto(in []*pb.EntityView) []collection.View {
	out := make([]collection.View, 0, len(in))
	for _, v := range in {
		out = append(out, ViewFromProto(v))
	}
	return out
}

func NoticeToProto(n notify.Notice) *pb.Notice {
	return &pb.Notice{
		Id:        n.ID,
		Time:      timestamppb.New(n.Time),
		Level:     string(n.Level),
		Kind:      n.Kind,
		Action:    n.Action,
		SubjectId: n.SubjectID,
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
	}
}

func NoticeFromProto(n *pb.Notice) notify.Notice {
	out := notify.Notice{
		ID:        n.GetId(),
		Level:     notify.Level(n.GetLevel()),
		Kind:      n.GetKind(),
		Action:    n.GetAction(),
		SubjectID: n.GetSubjectId(),
		Title:     n.GetTitle(),
		Body:      n.GetBody(),
		Read:      n.GetRead(),
	}
	if n.GetTime() != nil {
		out.Time = n.GetTime().AsTime()
	}
	return out
}

func NoticesFromProto(in []*pb.Notice) []notify.Notice {
	out := make([]notify.Notice, 0, len(in))
	for _, n := range in {
		out = append(out, NoticeFromProto(n))
	}
	return out
}

func TestimonialToProto(t models.Testimonial) *pb.Testimonial {
	return &pb.Testimonial{
		Id:        t.ID,
		Name:      t.Name,
		Text:      t.Text,
		Rating:    t.Rating,
		Approved:  t.Approved,
		CreatedAt: timestamppb.New(t.CreatedAt),
	}
}

func TestimonialFromProto(t *pb.Testimonial) models.Testimonial {
	out := models.Testimonial{
		ID:       t.GetId(),
		Name:     t.GetName(),
		Text:     t.GetText(),
		Rating:   t.GetRating(),
		Approved: t.GetApproved(),
	}
	if t.GetCreatedAt() != nil {
		out.CreatedAt = t.GetCreatedAt().AsTime()
	}
	return out
}

func FileToProto(f File) *pb.File {
	return &pb.File{Slot: f.Slot, Name: f.Name, ContentType: f.ContentType, Data: f.Data}
}

func FileFromProto(f *pb.File) File {
	return File{Slot: f.GetSlot(), Name: f.GetName(), ContentType: f.GetContentType(), Data: f.GetData()}
}

func FilesToProto(in []File) []*pb.File {
	if len(in) == 0 {
		return nil
	}
	out := make([]*pb.File, 0, len(in))
	for _, f := range in {
		out = append(out, FileToProto(f))
	}
	return out
}
