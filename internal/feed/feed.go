package feed

import (
	"time"

	"github.com/ClaraVasseur/InstaLite-Back/internal/account"
	"github.com/ClaraVasseur/InstaLite-Back/internal/comment"
	"github.com/ClaraVasseur/InstaLite-Back/internal/like"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
)

// PostView est la vue dénormalisée d'un post : champs stockés plus email
// du propriétaire, compteurs et drapeau is_liked calculés à la lecture.
// Rien de tout cela n'est persisté sur le post.
type PostView struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	AccountID    uint      `json:"account_id"`
	AccountEmail string    `json:"account_email"`
	MediaRef     string    `json:"media_ref"`
	Caption      string    `json:"caption"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	IsLiked      bool      `json:"is_liked"`
}

type CommentView struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	PostID       uint      `json:"post_id"`
	AccountID    uint      `json:"account_id"`
	AccountEmail string    `json:"account_email"`
	Body         string    `json:"body"`
}

// List assemble le fil complet, du plus récent au plus ancien.
// requesterID vaut 0 pour un lecteur anonyme : is_liked reste alors false.
func List(requesterID uint) ([]PostView, error) {
	posts, err := post.ListAll()
	if err != nil {
		return nil, err
	}

	emails := map[uint]string{}
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		view, err := assemble(p, requesterID, emails)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Detail renvoie la vue d'un post et ses commentaires (plus ancien d'abord).
func Detail(postID, requesterID uint) (*PostView, []CommentView, error) {
	p, err := post.Get(postID)
	if err != nil {
		return nil, nil, err
	}

	emails := map[uint]string{}
	view, err := assemble(*p, requesterID, emails)
	if err != nil {
		return nil, nil, err
	}

	comments, err := comment.ForPost(postID)
	if err != nil {
		return nil, nil, err
	}

	commentViews := make([]CommentView, 0, len(comments))
	for _, cmt := range comments {
		email, err := emailFor(cmt.AccountID, emails)
		if err != nil {
			return nil, nil, err
		}
		commentViews = append(commentViews, CommentView{
			ID:           cmt.ID,
			CreatedAt:    cmt.CreatedAt,
			PostID:       cmt.PostID,
			AccountID:    cmt.AccountID,
			AccountEmail: email,
			Body:         cmt.Body,
		})
	}

	return &view, commentViews, nil
}

func assemble(p post.Post, requesterID uint, emails map[uint]string) (PostView, error) {
	email, err := emailFor(p.AccountID, emails)
	if err != nil {
		return PostView{}, err
	}

	likeCount, err := like.CountForPost(p.ID)
	if err != nil {
		return PostView{}, err
	}
	commentCount, err := comment.CountForPost(p.ID)
	if err != nil {
		return PostView{}, err
	}
	isLiked, err := like.IsLikedBy(p.ID, requesterID)
	if err != nil {
		return PostView{}, err
	}

	return PostView{
		ID:           p.ID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		AccountID:    p.AccountID,
		AccountEmail: email,
		MediaRef:     p.MediaRef,
		Caption:      p.Caption,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		IsLiked:      isLiked,
	}, nil
}

// emailFor mémorise les emails déjà résolus le temps d'un assemblage.
func emailFor(accountID uint, cache map[uint]string) (string, error) {
	if email, ok := cache[accountID]; ok {
		return email, nil
	}
	acc, err := account.FindByID(accountID)
	if err != nil {
		return "", err
	}
	cache[accountID] = acc.Email
	return acc.Email, nil
}
