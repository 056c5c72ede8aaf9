// export_test.go exports private functions for white-box testing.
package sasscache

// ArtifactName exports artifactName for testing.
var ArtifactName = artifactName
