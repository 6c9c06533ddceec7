package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// S3API é o subconjunto do client S3 usado pelo ImageStore.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ImageStore guarda fotos de produto no S3, sempre convertidas para WebP.
// Sem bucket configurado todas as operações são no-ops.
type ImageStore struct {
	bucket    string
	publicURL string
	client    S3API
}

const maxImageWidth = 1024

type Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	PublicURL string
}

func New(cfg Config) *ImageStore {
	store := &ImageStore{
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
	}

	if cfg.Bucket == "" {
		return store
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	store.client = s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(creds),
	})

	return store
}

// NewWithClient existe para os testes injetarem um S3 fake.
func NewWithClient(client S3API, bucket, publicURL string) *ImageStore {
	return &ImageStore{
		bucket:    bucket,
		publicURL: publicURL,
		client:    client,
	}
}

func (s *ImageStore) Enabled() bool {
	return s != nil && s.bucket != "" && s.client != nil
}

// UploadProductImage decodifica, redimensiona e converte a imagem para WebP
// antes de subir. Retorna a key do objeto para gravar em Product.ImageKey.
func (s *ImageStore) UploadProductImage(
	ctx context.Context,
	productID uint,
	r io.Reader,
) (string, error) {

	if !s.Enabled() {
		return "", fmt.Errorf("image storage not configured")
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	src = scaleDown(src, maxImageWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("products/%d/%s.webp", productID, uuid.NewString())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	return key, nil
}

func (s *ImageStore) Delete(ctx context.Context, key string) error {
	if !s.Enabled() || key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// PublicURL monta a URL servida ao front para uma key de imagem.
func (s *ImageStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s", s.publicURL, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

func scaleDown(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
