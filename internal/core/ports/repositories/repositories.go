package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass a single dependency around.
type RepositoryProvider struct {
	User    UserRepository
	Article ArticleRepository
}
