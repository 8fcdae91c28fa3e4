package evidence

import "regexp"

// RuleKind selects how a skill is scored.
type RuleKind int

const (
	// KindLanguage scores purely from the skill's share of repository
	// language bytes.
	KindLanguage RuleKind = iota
	// KindSignal scores from per-repository evidence signals.
	KindSignal
	// KindHybrid combines the language share with evidence signals.
	KindHybrid
)

// Rule describes the detectable evidence for one skill. All signal
// fields are optional; a repository signals the skill when any one of
// them matches.
type Rule struct {
	Kind RuleKind

	// Languages are the provider language names whose byte shares are
	// summed for the language score (language and hybrid rules).
	Languages []string

	// EitherProof takes the better of the language and signal scores
	// for a hybrid rule instead of averaging them.
	EitherProof bool

	Indicators []string         // substrings matched against repository file paths
	Deps       []string         // package.json dependency names, lowercase
	PipDeps    []string         // requirements.txt package names, lowercase
	Patterns   []*regexp.Regexp // usage patterns matched against file samples
	Advanced   []*regexp.Regexp // advanced usage patterns, counted separately
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(pattern))
	}
	return compiled
}

// rules maps catalog skill names to their evidence rules. A claimed
// skill with no entry here always scores zero.
var rules = map[string]Rule{
	"JavaScript": {Kind: KindLanguage, Languages: []string{"JavaScript"}},
	"TypeScript": {Kind: KindLanguage, Languages: []string{"TypeScript"}},
	"Python":     {Kind: KindLanguage, Languages: []string{"Python"}},
	"Java":       {Kind: KindLanguage, Languages: []string{"Java"}},
	"Go":         {Kind: KindLanguage, Languages: []string{"Go"}},
	"Ruby":       {Kind: KindLanguage, Languages: []string{"Ruby"}},
	"PHP":        {Kind: KindLanguage, Languages: []string{"PHP"}},
	"C++":        {Kind: KindLanguage, Languages: []string{"C++"}},
	"C#":         {Kind: KindLanguage, Languages: []string{"C#"}},
	"Rust":       {Kind: KindLanguage, Languages: []string{"Rust"}},
	"Swift":      {Kind: KindLanguage, Languages: []string{"Swift"}},
	"Kotlin":     {Kind: KindLanguage, Languages: []string{"Kotlin"}},

	"HTML/CSS": {
		Kind:       KindHybrid,
		Languages:  []string{"HTML", "CSS", "SCSS", "Sass", "Less"},
		Indicators: []string{".html", ".css", ".scss"},
		Patterns: compile(
			`@media[^{]*\{`,
			`display:\s*(flex|grid)`,
			`<!doctype html|<!DOCTYPE html`,
		),
		Advanced: compile(
			`(?i)@keyframes\s`,
			`grid-template-(columns|areas)`,
			`var\(--[\w-]+\)`,
		),
	},
	"SQL": {
		Kind:        KindHybrid,
		Languages:   []string{"PLpgSQL", "SQL", "TSQL"},
		EitherProof: true,
		Indicators:  []string{".sql", "migrations/", "migrate/"},
		Deps:        []string{"knex", "sequelize", "typeorm", "prisma", "sqlite3", "better-sqlite3"},
		PipDeps:     []string{"sqlalchemy", "peewee", "alembic"},
		Patterns: compile(
			`(?i)select\s+.+\s+from\s+\w+`,
			`(?i)create\s+table`,
			`(?i)insert\s+into\s+\w+`,
		),
		Advanced: compile(
			`(?i)(inner|left|right|outer)\s+join`,
			`(?i)create\s+index`,
			`(?i)group\s+by\s`,
		),
	},

	"React": {
		Kind:       KindSignal,
		Indicators: []string{".jsx", ".tsx"},
		Deps:       []string{"react", "react-dom", "react-router-dom", "react-scripts"},
		Patterns: compile(
			`from ['"]react['"]`,
			`require\(['"]react['"]\)`,
			`useState\(|useEffect\(`,
			`React\.Component|ReactDOM`,
		),
		Advanced: compile(
			`useReducer\(|useContext\(|createContext\(`,
			`React\.memo\(|useMemo\(|useCallback\(`,
			`(function|const)\s+use[A-Z]\w*`,
		),
	},
	"Next.js": {
		Kind:       KindSignal,
		Indicators: []string{"next.config", "pages/_app", "app/layout."},
		Deps:       []string{"next"},
		Patterns: compile(
			`from ['"]next/`,
			`getStaticProps|getServerSideProps`,
			`next/router|next/navigation`,
		),
		Advanced: compile(
			`getStaticPaths|generateStaticParams`,
			`next/server|NextResponse`,
			`revalidate`,
		),
	},
	"Vue": {
		Kind:       KindSignal,
		Indicators: []string{".vue"},
		Deps:       []string{"vue", "vuex", "vue-router", "nuxt", "pinia"},
		Patterns: compile(
			`from ['"]vue['"]`,
			`new Vue\(|createApp\(`,
			`defineComponent\(`,
		),
		Advanced: compile(
			`defineProps|defineEmits`,
			`createStore\(|useStore\(|defineStore\(`,
			`watchEffect\(|computed\(`,
		),
	},
	"Angular": {
		Kind:       KindSignal,
		Indicators: []string{"angular.json", ".component.ts"},
		Deps:       []string{"@angular/core", "@angular/common", "@angular/cli"},
		Patterns: compile(
			`@Component\(\{`,
			`@NgModule\(\{`,
			`from ['"]@angular/`,
		),
		Advanced: compile(
			`@Injectable\(\{`,
			`ChangeDetectionStrategy`,
			`from ['"]rxjs`,
		),
	},
	"Tailwind CSS": {
		Kind:       KindSignal,
		Indicators: []string{"tailwind.config"},
		Deps:       []string{"tailwindcss"},
		Patterns: compile(
			`@tailwind\s+(base|components|utilities)`,
			`class(Name)?=["'][^"']*(flex |grid |text-\w|bg-\w)`,
		),
		Advanced: compile(
			`@apply\s`,
			`theme\.extend|darkMode`,
		),
	},
	"Node.js": {
		Kind:       KindSignal,
		Indicators: []string{"package.json"},
		Patterns: compile(
			`require\(['"][\w@]`,
			`module\.exports`,
			`process\.env\.`,
		),
		Advanced: compile(
			`worker_threads|child_process|cluster`,
			`fs\.promises|stream\.pipeline`,
			`EventEmitter`,
		),
	},
	"Express": {
		Kind: KindSignal,
		Deps: []string{"express"},
		Patterns: compile(
			`require\(['"]express['"]\)|from ['"]express['"]`,
			`express\(\)`,
			`app\.(get|post|put|delete|listen)\(`,
		),
		Advanced: compile(
			`express\.Router\(\)`,
			`\(err,\s*req,\s*res,\s*next\)`,
			`app\.use\(.+\)`,
		),
	},
	"Django": {
		Kind:       KindSignal,
		Indicators: []string{"manage.py", "settings.py", "wsgi.py"},
		PipDeps:    []string{"django", "djangorestframework"},
		Patterns: compile(
			`from django`,
			`models\.Model`,
			`urlpatterns\s*=`,
		),
		Advanced: compile(
			`APIView|ModelViewSet|ModelSerializer`,
			`@receiver\(|post_save|pre_save`,
			`select_related\(|prefetch_related\(`,
		),
	},
	"Flask": {
		Kind:    KindSignal,
		PipDeps: []string{"flask", "flask-sqlalchemy", "flask-restful"},
		Patterns: compile(
			`from flask import`,
			`Flask\(__name__\)`,
			`@app\.route\(`,
		),
		Advanced: compile(
			`Blueprint\(`,
			`@app\.errorhandler\(`,
			`current_app|app_context\(\)`,
		),
	},
	"FastAPI": {
		Kind:    KindSignal,
		PipDeps: []string{"fastapi", "uvicorn"},
		Patterns: compile(
			`from fastapi import`,
			`FastAPI\(`,
			`@(app|router)\.(get|post|put|delete)\(`,
		),
		Advanced: compile(
			`Depends\(`,
			`APIRouter\(`,
			`BackgroundTasks|WebSocket`,
		),
	},
	"Spring Boot": {
		Kind:       KindSignal,
		Indicators: []string{"pom.xml", "build.gradle", "application.properties", "application.yml"},
		Patterns: compile(
			`@SpringBootApplication`,
			`@RestController|@Controller`,
			`@Autowired|@Service|@Repository`,
		),
		Advanced: compile(
			`@Transactional`,
			`@ConfigurationProperties`,
			`@Scheduled|@Async`,
		),
	},
	"REST API": {
		Kind:       KindSignal,
		Indicators: []string{"routes/", "controllers/", "api/"},
		Deps:       []string{"express", "fastify", "koa", "axios"},
		PipDeps:    []string{"djangorestframework", "fastapi", "flask-restful", "requests"},
		Patterns: compile(
			`app\.(get|post|put|delete)\(['"]/`,
			`@(Get|Post|Put|Delete)Mapping`,
			`res\.(status|json)\(|fetch\(['"]`,
		),
		Advanced: compile(
			`(?i)swagger|openapi`,
			`/api/v\d`,
			`(?i)rate.?limit`,
		),
	},
	"GraphQL": {
		Kind:       KindSignal,
		Indicators: []string{".graphql", ".gql"},
		Deps:       []string{"graphql", "apollo-server", "@apollo/client", "@apollo/server", "urql"},
		PipDeps:    []string{"graphene", "strawberry-graphql", "ariadne"},
		Patterns: compile(
			"gql`",
			`type\s+Query\s*\{`,
			`useQuery\(|useMutation\(`,
		),
		Advanced: compile(
			`type\s+Mutation\s*\{`,
			`(?i)subscription`,
			`DataLoader`,
		),
	},
	"PostgreSQL": {
		Kind:    KindSignal,
		Deps:    []string{"pg", "pg-promise", "postgres"},
		PipDeps: []string{"psycopg2", "psycopg2-binary", "asyncpg"},
		Patterns: compile(
			`postgres(ql)?://`,
			`POSTGRES_\w+`,
			`(?i)jsonb`,
		),
		Advanced: compile(
			`(?i)create\s+index.*using\s+(gin|gist)`,
			`(?i)with\s+recursive`,
			`(?i)partition\s+by`,
		),
	},
	"MySQL": {
		Kind:    KindSignal,
		Deps:    []string{"mysql", "mysql2"},
		PipDeps: []string{"pymysql", "mysqlclient", "mysql-connector-python"},
		Patterns: compile(
			`mysql://`,
			`MYSQL_\w+`,
		),
		Advanced: compile(
			`(?i)engine\s*=\s*innodb`,
			`(?i)fulltext`,
		),
	},
	"MongoDB": {
		Kind:    KindSignal,
		Deps:    []string{"mongodb", "mongoose"},
		PipDeps: []string{"pymongo", "motor", "mongoengine"},
		Patterns: compile(
			`mongodb(\+srv)?://`,
			`mongoose\.(Schema|model|connect)`,
			`new Schema\(`,
		),
		Advanced: compile(
			`aggregate\(\[`,
			`\$lookup|\$group|\$match`,
			`createIndex\(`,
		),
	},
	"Redis": {
		Kind:    KindSignal,
		Deps:    []string{"redis", "ioredis"},
		PipDeps: []string{"redis", "aioredis"},
		Patterns: compile(
			`redis://`,
			`createClient\(|new Redis\(`,
			`REDIS_\w+`,
		),
		Advanced: compile(
			`pipeline\(\)|multi\(\)`,
			`publish\(|subscribe\(`,
			`setex\(|expire\(`,
		),
	},
	"Docker": {
		Kind:       KindSignal,
		Indicators: []string{"dockerfile", "docker-compose", ".dockerignore"},
		Patterns: compile(
			`(?m)^FROM\s+\S+:[\w.@-]+`,
			`(?m)^EXPOSE\s+\d+`,
			`docker-compose|docker compose`,
		),
		Advanced: compile(
			`(?m)^FROM\s+.+\s+[Aa][Ss]\s+\w+`,
			`(?m)^HEALTHCHECK\b`,
			`(?m)^ENTRYPOINT\s+\[`,
		),
	},
	"Kubernetes": {
		Kind:       KindSignal,
		Indicators: []string{"k8s/", "kubernetes/", "helm/", "deployment.yaml", "deployment.yml"},
		Patterns: compile(
			`kind:\s*(Deployment|Service|Ingress|ConfigMap)`,
			`apiVersion:\s*apps/v1`,
			`kubectl\s+(apply|get|create)`,
		),
		Advanced: compile(
			`kind:\s*(StatefulSet|DaemonSet|CustomResourceDefinition)`,
			`(?i)horizontalpodautoscaler`,
			`Chart\.yaml|helm\s+(install|upgrade)`,
		),
	},
	"AWS": {
		Kind:       KindSignal,
		Indicators: []string{"serverless.yml", "cloudformation", ".tf"},
		Deps:       []string{"aws-sdk", "@aws-sdk/client-s3", "@aws-sdk/client-dynamodb", "serverless"},
		PipDeps:    []string{"boto3", "botocore"},
		Patterns: compile(
			`AWS_\w+|aws_access_key`,
			`boto3\.(client|resource)\(`,
			`new AWS\.|@aws-sdk/`,
		),
		Advanced: compile(
			`(?i)assume.?role|sts\.`,
			`(?i)cloudformation|aws-cdk`,
			`(?i)\b(sqs|sns|kinesis)\b`,
		),
	},
	"CI/CD": {
		Kind:       KindSignal,
		Indicators: []string{".github/workflows", ".gitlab-ci", "jenkinsfile", ".circleci", ".travis"},
		Patterns: compile(
			`on:\s*(push|pull_request|\[)`,
			`runs-on:\s*`,
			`stages:\s*`,
		),
		Advanced: compile(
			`matrix:\s*`,
			`needs:\s*\[?`,
			`docker (build|push)`,
		),
	},
}
