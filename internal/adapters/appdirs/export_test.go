package appdirs

// SetUserCacheDir replaces the per-user cache directory lookup.
func (r *Resolver) SetUserCacheDir(fn func() (string, error)) {
	r.userCacheDir = fn
}
