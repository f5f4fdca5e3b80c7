package setup

import (
	"context"
	"fmt"

	"github.com/rnkit-labs/rnsetup/internal/scaffold"
)

// ArtifactSteps returns one step per catalog artifact, in catalog order,
// followed by the skeleton step. Artifact failures are never fatal.
func ArtifactSteps(c *scaffold.Catalog) []Step {
	steps := make([]Step, 0, len(c.Artifacts)+1)
	for _, a := range c.Artifacts {
		a := a
		steps = append(steps, Step{
			Name:    a.Name,
			Section: SectionArtifacts,
			Run: func(_ context.Context, env *Env) Result {
				return ensureArtifact(env, a)
			},
		})
	}
	skeleton := c.Skeleton
	steps = append(steps, Step{
		Name:    "source skeleton",
		Section: SectionSkeleton,
		Run: func(_ context.Context, env *Env) Result {
			return buildSkeleton(env, skeleton)
		},
	})
	return steps
}

func ensureArtifact(env *Env, a scaffold.Artifact) Result {
	out, err := env.engine().Ensure(a)
	if err != nil {
		return Fail(err, "%s (%s) could not be created", a.Name, a.Path)
	}

	switch out.Status {
	case scaffold.StatusExisted:
		return Skip("%s already exists", a.Path)
	case scaffold.StatusUnavailable:
		return Skip("no %s template found, %s not created", a.Name, a.Path)
	}
	if out.Source == scaffold.SourceTemplate {
		return Ok("created %s from template", a.Path)
	}
	return Ok("created %s", a.Path)
}

func buildSkeleton(env *Env, s scaffold.Skeleton) Result {
	res, err := scaffold.BuildSkeleton(env.Dir, s)
	if err != nil {
		return Fail(err, "source skeleton is incomplete (%d directories created)", len(res.Created))
	}
	if res.Status == scaffold.StatusExisted {
		return Skip("%s/ already exists", s.Root)
	}
	return Ok("created %s", describeSkeleton(s, len(res.Created)))
}

func describeSkeleton(s scaffold.Skeleton, n int) string {
	if n == 1 {
		return fmt.Sprintf("%s/ (1 directory)", s.Root)
	}
	return fmt.Sprintf("%s/ (%d directories)", s.Root, n)
}
