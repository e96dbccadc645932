//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// RouteIdentity identifies which model's list view is being rendered.
// Both segments come from the request path and are immutable for the
// duration of a render.
type RouteIdentity struct {
	AppName   string `json:"app_name"`
	ModelName string `json:"model_name"`
}

// Complete reports whether both path segments have been resolved.
func (id RouteIdentity) Complete() bool {
	return id.AppName != "" && id.ModelName != ""
}

// Equal reports whether two identities refer to the same model list.
func (id RouteIdentity) Equal(other RouteIdentity) bool {
	return id.AppName == other.AppName && id.ModelName == other.ModelName
}

// String returns the "app/model" form used in logs and cache keys.
func (id RouteIdentity) String() string {
	return id.AppName + "/" + id.ModelName
}
