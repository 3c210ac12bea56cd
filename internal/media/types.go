package media

type Type string

const (
	TypeIcon Type = "icon"
)

func (t Type) Size() (w int16, h int16) {
	switch t {
	case TypeIcon:
		return 16, 16
	default:
		return 0, 0
	}
}
