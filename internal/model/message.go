package model

// MediaKind classifies an attachment by how it rides in the outbound message.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaDocument MediaKind = "document"
)

// AttachmentRef is a resolved, reachability-checked patient file. It lives
// only for the duration of one dispatch and is never persisted.
type AttachmentRef struct {
	FileName    string
	StoragePath string
	PublicURL   string
	Media       MediaKind
	Verified    bool
}

// SegmentKind is the wire kind of one outbound message segment.
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentImage SegmentKind = "image"
)

// MessageSegment is one part of the ordered outbound message: the rendered
// body first, then one segment per attachment.
type MessageSegment struct {
	Kind SegmentKind
	Text string // set for text segments
	URL  string // set for image segments
}
