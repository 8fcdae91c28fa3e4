package remediation

import (
	"fmt"

	"github.com/snehagrian/proofmap/internal/types"
)

// guidanceFor returns exactly three steps for integrating a skill into
// an existing repository. Skills without canned guidance fall back to a
// generic template that names the skill and repository.
func guidanceFor(skill, repo string) []string {
	if steps, ok := usageGuidance[skill]; ok {
		return steps
	}
	return []string{
		fmt.Sprintf("Find a small, low-risk corner of %s where %s fits without rewiring the project.", repo, skill),
		fmt.Sprintf("Introduce %s there behind the existing interfaces and keep the change reviewable.", skill),
		fmt.Sprintf("Add a test or runnable example proving the %s integration works, then link it from the README.", skill),
	}
}

// ideasFor returns up to three project ideas, each with exactly three
// execution steps.
func ideasFor(skill string) []types.ProjectIdea {
	if ideas, ok := projectIdeas[skill]; ok {
		return ideas
	}
	return []types.ProjectIdea{
		{
			Idea: fmt.Sprintf("Build a small command-line tool where %s does the core work", skill),
			Plan: []string{
				fmt.Sprintf("Pick a task you currently do by hand and sketch how %s would solve it.", skill),
				"Implement the happy path first and keep the scope to a weekend.",
				"Publish the repository with a README that shows real input and output.",
			},
		},
		{
			Idea: fmt.Sprintf("Recreate one feature of an app you use daily with %s at the center", skill),
			Plan: []string{
				"Pick a single feature and write down its observable behavior before coding.",
				fmt.Sprintf("Implement it with %s, committing in small reviewable steps.", skill),
				"Write tests for the edge cases you discover along the way.",
			},
		},
	}
}

// usageGuidance holds the skill-specific integration steps. Every entry
// has exactly three steps.
var usageGuidance = map[string][]string{
	"Docker": {
		"Write a Dockerfile that installs dependencies and starts the existing entrypoint.",
		"Add a .dockerignore and a docker-compose.yml so the whole stack starts with one command.",
		"Document the image build in the README and push a tagged image from CI.",
	},
	"Kubernetes": {
		"Write Deployment and Service manifests for the container this repository already ships.",
		"Add liveness and readiness probes along with resource requests and limits.",
		"Deploy to a local kind cluster and capture the kubectl steps in the README.",
	},
	"CI/CD": {
		"Add a workflow under .github/workflows that runs the test suite on every push.",
		"Extend it with a lint job and a build step that publishes an artifact or image.",
		"Add a status badge to the README and make the workflow required for merging.",
	},
	"PostgreSQL": {
		"Replace the current in-memory or file-backed storage with a PostgreSQL repository layer.",
		"Define the schema through checked-in migrations instead of hand-run statements.",
		"Write an integration test that runs the core queries against a disposable database.",
	},
	"MySQL": {
		"Move one entity's reads and writes behind a MySQL-backed data layer.",
		"Manage the schema with checked-in migrations and sensible indexes.",
		"Add an integration test against a throwaway database in CI.",
	},
	"MongoDB": {
		"Model one existing entity as a collection and route its reads and writes through a MongoDB client.",
		"Add schema validation or an ODM layer so documents stay consistent.",
		"Index the fields your queries filter on and verify the win with explain output.",
	},
	"Redis": {
		"Cache the most expensive read path in Redis with a sensible TTL.",
		"Invalidate the cache on the matching write path so stale reads cannot linger.",
		"Log the hit rate so the improvement is measurable.",
	},
	"React": {
		"Rebuild one server-rendered or static page of this project as a React component tree.",
		"Lift shared state into hooks and add client-side routing for at least two views.",
		"Cover the core interactions with component tests.",
	},
	"TypeScript": {
		"Enable TypeScript alongside the existing JavaScript using allowJs.",
		"Convert the most central module and its callers to .ts with explicit types.",
		"Turn on strict checks and fix what surfaces, one flag at a time.",
	},
	"GraphQL": {
		"Stand up a GraphQL endpoint next to the existing routes, exposing one resource type.",
		"Add queries plus at least one mutation with input validation.",
		"Point one consumer at the new endpoint and retire the duplicated call it replaces.",
	},
	"Express": {
		"Introduce an Express server exposing the project's core operation as an HTTP endpoint.",
		"Split routes into an express.Router module with validation and error-handling middleware.",
		"Add supertest coverage for the happy path and one failure path.",
	},
	"Node.js": {
		"Add a Node entrypoint that drives this project's core logic from the command line.",
		"Wire npm scripts for start and test so the workflow is reproducible.",
		"Handle async failures explicitly instead of letting the process crash.",
	},
	"AWS": {
		"Deploy this service to AWS on a managed runtime such as App Runner or Lambda.",
		"Move configuration and secrets into SSM Parameter Store.",
		"Script the provisioning with infrastructure-as-code and check it in.",
	},
	"Django": {
		"Wrap the existing logic in a Django project with a single app and working settings.",
		"Model the core entities with the ORM and generate migrations.",
		"Expose list and detail views and test them through Django's test client.",
	},
	"Flask": {
		"Expose the core function of this project behind a small Flask API.",
		"Organize routes into blueprints with input validation and error handlers.",
		"Add pytest coverage driven through Flask's test client.",
	},
	"FastAPI": {
		"Expose the project's core operation through a FastAPI app with typed request models.",
		"Split endpoints into routers and add dependency-injected validation.",
		"Generate the OpenAPI docs and link them from the README.",
	},
	"SQL": {
		"Move one dataset this project handles into a relational schema you design.",
		"Write the read paths as real queries with joins instead of in-memory filtering.",
		"Check the schema into version control with a migration tool.",
	},
	"Tailwind CSS": {
		"Install Tailwind and rebuild one page's custom CSS with utility classes.",
		"Extract repeated utility clusters into components or @apply layers.",
		"Configure the theme to match the project's existing colors and spacing.",
	},
	"Next.js": {
		"Port one React view in this project to a Next.js app with file-based routing.",
		"Move data fetching into server components or route handlers.",
		"Enable static generation for pages that rarely change and deploy the build.",
	},
	"REST API": {
		"Define resource-oriented routes for the project's core entities with proper verbs and status codes.",
		"Add request validation and a consistent JSON error shape.",
		"Document the endpoints with an OpenAPI spec checked into the repository.",
	},
	"HTML/CSS": {
		"Build a real page for this project, such as a landing or docs page, with semantic HTML.",
		"Style it with flexbox or grid in a standalone stylesheet.",
		"Make it responsive with media queries and verify it on a mobile viewport.",
	},
}

// projectIdeas holds the skill-specific starter projects. Every idea
// carries exactly three steps.
var projectIdeas = map[string][]types.ProjectIdea{
	"Docker": {
		{
			Idea: "Containerize a multi-service app with an API, a worker, and a database",
			Plan: []string{
				"Write one Dockerfile per service with small cache-friendly layers.",
				"Compose them with healthchecks and named volumes.",
				"Add a make target that builds the stack and runs a smoke test against it.",
			},
		},
		{
			Idea: "Build a reusable base image for your own projects",
			Plan: []string{
				"Create a hardened base image carrying your runtime and common tooling.",
				"Publish it to a registry with version tags from CI.",
				"Migrate one existing project onto it and measure the build-time win.",
			},
		},
	},
	"Kubernetes": {
		{
			Idea: "Deploy a two-tier app to a local cluster",
			Plan: []string{
				"Package the app and its database as Deployments with Services and probes.",
				"Manage configuration with ConfigMaps and Secrets.",
				"Roll out an update with zero downtime and document the rollback path.",
			},
		},
		{
			Idea: "Write a Helm chart for an app you already run",
			Plan: []string{
				"Template the manifests with values for image, replicas, and resources.",
				"Add chart linting and a dry-run install to CI.",
				"Install the chart into kind and verify it with helm test.",
			},
		},
	},
	"React": {
		{
			Idea: "Build a dashboard over a public API",
			Plan: []string{
				"Scaffold with Vite and organize views as function components with hooks.",
				"Fetch and cache the API data, handling loading and error states explicitly.",
				"Add filtering plus a chart view and cover the key flows with component tests.",
			},
		},
		{
			Idea: "Rebuild the core screen of an issue tracker",
			Plan: []string{
				"Model board state with useReducer and context.",
				"Implement drag-and-drop between columns.",
				"Persist to localStorage and add keyboard accessibility.",
			},
		},
	},
	"PostgreSQL": {
		{
			Idea: "Design the schema for a small marketplace",
			Plan: []string{
				"Model users, listings, and orders with foreign keys and constraints.",
				"Write the search and order-history queries with joins and indexes.",
				"Load realistic seed data and compare query plans before and after indexing.",
			},
		},
		{
			Idea: "Add full-text search to a dataset you care about",
			Plan: []string{
				"Import the dataset and maintain a tsvector column with triggers.",
				"Expose ranked search through a small API.",
				"Benchmark against LIKE queries and write up the difference.",
			},
		},
	},
	"Redis": {
		{
			Idea: "Build a rate limiter service",
			Plan: []string{
				"Implement token-bucket counters keyed per client with TTLs.",
				"Expose check-and-consume over a tiny HTTP API.",
				"Load-test it and chart allowed versus rejected requests.",
			},
		},
		{
			Idea: "Add a leaderboard to a quiz or game app",
			Plan: []string{
				"Store scores in a sorted set with atomic updates.",
				"Serve top-N and rank-of-player queries.",
				"Namespace keys per season and expire old ones.",
			},
		},
	},
	"GraphQL": {
		{
			Idea: "Build a GraphQL gateway over two public REST APIs",
			Plan: []string{
				"Define a schema that joins both sources into one graph.",
				"Resolve fields with batched loaders to avoid N+1 calls.",
				"Add persisted queries and depth limits before publishing it.",
			},
		},
		{
			Idea: "Add a GraphQL layer to a dataset you already have",
			Plan: []string{
				"Model the dataset as types with relations and pagination.",
				"Implement mutations with input validation.",
				"Ship a small playground UI that runs the common queries.",
			},
		},
	},
	"AWS": {
		{
			Idea: "Ship a serverless URL shortener",
			Plan: []string{
				"Store mappings in DynamoDB behind a Lambda and API Gateway.",
				"Provision everything with CDK or Terraform.",
				"Add request metrics and an alarm on error rate.",
			},
		},
		{
			Idea: "Build a nightly data pipeline",
			Plan: []string{
				"Pull a public dataset into S3 on a schedule.",
				"Transform it with a Lambda and load the result into a queryable store.",
				"Alert on pipeline failures through SNS.",
			},
		},
	},
	"CI/CD": {
		{
			Idea: "Add a full pipeline to a project that has none",
			Plan: []string{
				"Run tests and linting on every push with a matrix across runtime versions.",
				"Build and publish a versioned artifact on tags.",
				"Gate merges on the pipeline and add a release changelog step.",
			},
		},
		{
			Idea: "Build a deploy-on-merge flow for a small service",
			Plan: []string{
				"Containerize the service and push images from CI.",
				"Deploy to a staging environment on every merge to main.",
				"Promote to production with a manual approval step.",
			},
		},
	},
	"MongoDB": {
		{
			Idea: "Build an activity feed service",
			Plan: []string{
				"Model events as documents with compound indexes for per-user queries.",
				"Serve paginated feeds through an aggregation pipeline.",
				"Archive old events with TTL indexes.",
			},
		},
		{
			Idea: "Catalog a collection you own, such as books or records",
			Plan: []string{
				"Design a flexible document schema with validation rules.",
				"Build search with text indexes and faceted filters.",
				"Expose it through a small API with pagination.",
			},
		},
	},
	"Go": {
		{
			Idea: "Write a concurrent link checker for websites",
			Plan: []string{
				"Crawl pages with a bounded worker pool and a context deadline.",
				"Report broken links with response codes in a clean table.",
				"Package it as a single static binary with releases in CI.",
			},
		},
		{
			Idea: "Build a small HTTP service with graceful shutdown",
			Plan: []string{
				"Expose a JSON API with the standard library mux.",
				"Add structured logging and request timeouts.",
				"Write table-driven tests for the handlers.",
			},
		},
	},
	"TypeScript": {
		{
			Idea: "Build a typed SDK for a public API",
			Plan: []string{
				"Model the API's resources with precise types and discriminated unions.",
				"Wrap the endpoints with a small typed client and good errors.",
				"Publish it to npm with generated type declarations.",
			},
		},
		{
			Idea: "Port a JavaScript project you own to strict TypeScript",
			Plan: []string{
				"Enable allowJs and convert modules from the leaves inward.",
				"Replace any-typed seams with real interfaces.",
				"Finish with strict mode on and zero suppressions.",
			},
		},
	},
}
