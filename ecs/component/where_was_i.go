package component

// WhereWasI marks an entity whose Transform is saved when the window closes
// and restored at the next startup. Name is the save file's base name; the
// file ends up at <save dir>/<Name>.state.
type WhereWasI struct {
	Name string
}

// CameraWhereWasI is the shorthand tag used for cameras.
func CameraWhereWasI() WhereWasI {
	return WhereWasI{Name: "camera"}
}

var WhereWasIComponent = NewComponent[WhereWasI]()
