package main

import (
	"context"
	"log"

	"EquiLearn/internal/config"
	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"
	"EquiLearn/internal/repository/mysql"
	"EquiLearn/internal/repository/redis"
	"EquiLearn/internal/router"
	"EquiLearn/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pkg.InitJWT(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		log.Fatalf("redis: %v", err)
	}

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.School{},
		&model.Need{},
		&model.Donation{},
		&model.DonationOutbox{},
		&model.FeaturedSchool{},
		&model.FeaturedSchoolDonation{},
		&model.MicroDonationPool{},
		&model.MicroDonationPoolJoin{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := mysql.Seed(mysql.DB); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// Donation events drain to Kafka when brokers are configured, otherwise to
	// the process log.
	sender := service.LogSender
	if brokers := cfg.KafkaBrokerList(); len(brokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: brokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	relayer := service.NewOutboxRelayer(sender)
	go relayer.Run(context.Background())

	r := router.InitRouter(cfg)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
