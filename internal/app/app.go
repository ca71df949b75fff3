package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hireloop/swipematch/internal/command"
	"github.com/hireloop/swipematch/internal/datasources"
	"github.com/hireloop/swipematch/internal/datasources/embedding"
	"github.com/hireloop/swipematch/internal/datasources/gemini"
	"github.com/hireloop/swipematch/internal/datasources/mysql"
	"github.com/hireloop/swipematch/internal/datasources/pinecone"
	"github.com/hireloop/swipematch/internal/datasources/redisx"
	"github.com/hireloop/swipematch/internal/datasources/tei"
	"github.com/hireloop/swipematch/internal/scheduler"
	"github.com/hireloop/swipematch/internal/transport/web/router"
	"github.com/hireloop/swipematch/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	records, err := setupRecordStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up record store: %w", err)
	}

	index, err := setupVectorIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up vector index: %w", err)
	}

	exclusions, err := setupExclusionList(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up exclusion list: %w", err)
	}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	embedCandidateCmd := &command.EmbedCandidate{
		Candidates:   records,
		Embedder:     embedder,
		StoreVectors: records,
		IndexVectors: index,
	}
	embedJobCmd := &command.EmbedJob{
		Jobs:         records,
		Embedder:     embedder,
		StoreVectors: records,
		IndexVectors: index,
	}
	refreshEmbeddingsCmd := &command.RefreshEmbeddings{
		Missing:           records,
		EmbedCandidateCmd: embedCandidateCmd,
		EmbedJobCmd:       embedJobCmd,
		Config:            DefaultRefreshEmbeddingsConfig(),
	}

	httpRouter, err := router.MakeRouter(
		router.Dependencies{
			Records:      records,
			Applications: records,
			RecommendJobsCmd: &command.RecommendJobs{
				Candidates: records,
				Ranker:     index,
				Jobs:       records,
			},
			RecommendCandidatesCmd: &command.RecommendCandidates{
				Jobs:       records,
				Exclusions: exclusions,
				Ranker:     index,
				Candidates: records,
			},
			SwipeJobCmd: &command.SwipeJob{
				Jobs:         records,
				Applications: records,
			},
			DecideApplicationCmd: &command.DecideApplication{
				Applications: records,
			},
			AnonymizeCandidateCmd: &command.AnonymizeCandidate{
				Candidates: records,
				Exclusions: exclusions,
			},
			SetJobStatusCmd: &command.SetJobStatus{
				Jobs: records,
			},
		},
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
		&scheduler.Scheduler{
			RefreshCmd: refreshEmbeddingsCmd,
			Spec:       MustGetEnvAsString(ctx, "EMBEDDING_REFRESH_SPEC"),
			RunOnStart: true,
		},
	}, nil
}

func setupRecordStore(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}
	return mysql.New(db), nil
}

func setupVectorIndex(ctx context.Context) (datasources.VectorIndex, error) {
	switch driver := MustGetEnvAsString(ctx, "VECTOR_INDEX_DRIVER"); driver {
	case "null":
		return datasources.NullVectorIndex{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown vector index driver [%s]", driver)
	}
}

func setupExclusionList(ctx context.Context) (datasources.ExclusionList, error) {
	switch driver := MustGetEnvAsString(ctx, "EXCLUSIONS_DRIVER"); driver {
	case "null":
		return datasources.NullExclusionList{}, nil
	case "redis":
		list, err := redisx.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unknown exclusions driver [%s]", driver)
	}
}

// setupEmbedder builds the ordered fallback chain over the configured
// embedding providers. Providers are tried in the order they are listed.
func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	var attempts []embedding.Attempt

	for _, driver := range MustGetEnvAsStrings(ctx, "EMBEDDING_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty EMBEDDING_DRIVERS)
		case "gemini":
			client, err := gemini.NewClient(
				ctx,
				MustGetEnvAsString(ctx, "GEMINI_API_KEY"),
				MustGetEnvAsString(ctx, "GEMINI_EMBEDDING_MODEL"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating gemini client: %w", err)
			}
			attempts = append(attempts, embedding.Attempt{Name: "gemini", Embedder: client})
		case "tei":
			for _, client := range tei.Attempts(MustGetEnvAsString(ctx, "TEI_ENDPOINT")) {
				attempts = append(attempts, embedding.Attempt{
					Name:     fmt.Sprintf("tei_%s", client.Variant()),
					Embedder: client,
				})
			}
		case "null":
			attempts = append(attempts, embedding.Attempt{Name: "null", Embedder: datasources.NullEmbedder{}})
		default:
			return nil, fmt.Errorf("unknown embedding driver [%s]", driver)
		}
	}

	return embedding.New(attempts...), nil
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
